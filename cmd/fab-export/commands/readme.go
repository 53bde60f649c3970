package commands

import (
	"context"
	"fmt"

	"github.com/jinford/fab-export/pkg/kicad"
	"github.com/jinford/fab-export/pkg/summary"
	"github.com/urfave/cli/v3"
)

// ReadmeGenerateAction は既存の出力からREADME.mdだけを再生成するコマンドのアクション
func ReadmeGenerateAction(ctx context.Context, cmd *cli.Command) error {
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

	gen := summary.NewReadmeGenerator(projectDir, outputDir, project.Name).
		WithRevision(summary.HeadRevision(ctx, projectDir))
	readmePath, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("READMEの生成に失敗: %w", err)
	}

	fmt.Printf("✓ README.md を生成しました: %s\n", readmePath)
	return nil
}
