package summary

import (
	"context"
	"os/exec"
	"strings"
)

// HeadRevision は projectDir の git HEAD 短縮ハッシュを返します
// gitリポジトリでない場合や git コマンドが無い場合は空文字列を返します
// （リビジョンの記載は任意情報なのでエラー扱いしない）
func HeadRevision(ctx context.Context, projectDir string) string {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD")
	cmd.Dir = projectDir

	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
