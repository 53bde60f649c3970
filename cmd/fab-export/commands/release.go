package commands

import (
	"context"
	"fmt"

	"github.com/jinford/fab-export/pkg/kicad"
	"github.com/jinford/fab-export/pkg/summary"
	"github.com/urfave/cli/v3"
)

// ReleaseAction はエクスポート済みのガーバーを製造用zipにまとめるコマンドのアクション
func ReleaseAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(envFile)
	if err != nil {
		return err
	}

	projectDir, err := resolveProjectDir(cmd)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(cmd, appCtx.Config, projectDir)

	project, err := kicad.DiscoverProject(projectDir)
	if err != nil {
		return fmt.Errorf("プロジェクトの特定に失敗: %w", err)
	}

	zipPath, err := summary.ArchiveGerbers(outputDir, project.Name)
	if err != nil {
		return fmt.Errorf("ガーバーのアーカイブに失敗: %w", err)
	}

	fmt.Printf("✓ 製造用zipを作成しました: %s\n", zipPath)
	return nil
}
