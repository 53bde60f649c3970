package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinford/fab-export/internal/platform/logger"
	"github.com/jinford/fab-export/pkg/config"
	"github.com/jinford/fab-export/pkg/kicad"
	"github.com/urfave/cli/v3"
)

// AppContext はコマンド実行に必要な共通コンテキストを保持する
type AppContext struct {
	Config *config.Config
	Logger *slog.Logger
}

// NewAppContext は設定ファイルを読み込み AppContext を作成する
func NewAppContext(envFile string) (*AppContext, error) {
	// 設定の読み込み
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	// ロガーの初期化（platform層を使用）
	appLogger := logger.New(logger.DefaultConfig())

	return &AppContext{
		Config: cfg,
		Logger: appLogger,
	}, nil
}

// resolveProjectDir は --project-dir の指定を絶対パスに解決する
// 未指定の場合はカレントディレクトリを使う（プロジェクトディレクトリでの実行を想定）
func resolveProjectDir(cmd *cli.Command) (string, error) {
	dir := cmd.String("project-dir")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("カレントディレクトリの取得に失敗: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("プロジェクトディレクトリの解決に失敗: %w", err)
	}
	return abs, nil
}

// resolveOutputDir は出力ディレクトリを決定する
// --output 指定が設定値より優先され、相対パスはプロジェクトディレクトリ基準で解決する
func resolveOutputDir(cmd *cli.Command, cfg *config.Config, projectDir string) string {
	out := cmd.String("output")
	if out == "" {
		out = cfg.OutputDir
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(projectDir, out)
	}
	return out
}

// filterSkipped は skip（カンマ区切りの種別リスト）で指定されたジョブを除外する
func filterSkipped(jobs []kicad.ArtifactJob, skip string) []kicad.ArtifactJob {
	if skip == "" {
		return jobs
	}

	skipped := make(map[string]bool)
	for _, s := range strings.Split(skip, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			skipped[s] = true
		}
	}

	filtered := make([]kicad.ArtifactJob, 0, len(jobs))
	for _, aj := range jobs {
		if !skipped[string(aj.Artifact.Kind)] {
			filtered = append(filtered, aj)
		}
	}
	return filtered
}
