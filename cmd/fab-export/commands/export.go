package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinford/fab-export/pkg/kicad"
	"github.com/jinford/fab-export/pkg/runner"
	"github.com/jinford/fab-export/pkg/summary"
	"github.com/urfave/cli/v3"
)

// ExportRunAction は全製造出力をエクスポートするコマンドのアクション
// 前提条件の検証 → ジョブ組み立て → ワーカープール実行 → 集計 → README生成
func ExportRunAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")
	workers := cmd.Int("workers")
	skip := cmd.String("skip")
	noReadme := cmd.Bool("no-readme")
	reportPath := cmd.String("report")

	appCtx, err := NewAppContext(envFile)
	if err != nil {
		return err
	}
	cfg := appCtx.Config

	projectDir, err := resolveProjectDir(cmd)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(cmd, cfg, projectDir)
	if workers <= 0 {
		workers = cfg.Workers
	}

	// 前提条件の検証（ここで失敗した場合はジョブを一切投入せず即座に中断する）
	project, err := kicad.DiscoverProject(projectDir)
	if err != nil {
		return fmt.Errorf("プロジェクトの特定に失敗: %w", err)
	}
	if err := project.Validate(); err != nil {
		return fmt.Errorf("前提条件エラー: %w", err)
	}

	kicadCLI := kicad.NewCLI(cfg.KiCad.BinPath, appCtx.Logger)
	if err := kicadCLI.CheckAvailable(ctx); err != nil {
		return fmt.Errorf("前提条件エラー: %w", err)
	}

	exporter := kicad.NewExporter(kicadCLI, project, kicad.ExporterOptions{
		OutputDir:    outputDir,
		GerberLayers: cfg.KiCad.GerberLayers,
		PosUnits:     cfg.KiCad.PosUnits,
		BOMFields:    cfg.KiCad.BOMFields,
		BOMGroupBy:   cfg.KiCad.BOMGroupBy,
	})
	if err := exporter.EnsureOutputDirs(); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗: %w", err)
	}

	artifactJobs := filterSkipped(exporter.Jobs(), skip)
	jobs := make([]runner.Job, 0, len(artifactJobs))
	for _, aj := range artifactJobs {
		jobs = append(jobs, aj.Job)
	}

	appCtx.Logger.Info("エクスポート開始",
		"project", project.Name,
		"jobs", len(jobs),
		"workers", workers,
	)

	pool := runner.NewPool(workers, appCtx.Logger)
	report := pool.Run(ctx, jobs)

	// 集計の表示
	fmt.Printf("\n完了: %d/%d ジョブ成功 (%.2f秒)\n", report.Succeeded(), report.Len(), report.Elapsed.Seconds())
	if failed := report.Failed(); len(failed) > 0 {
		fmt.Printf("失敗したジョブ: %s\n", strings.Join(failed, ", "))
	}

	// 実行レポートのJSONエクスポート（任意）
	if reportPath != "" {
		if err := summary.WriteRunReportJSON(report, reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "警告: 実行レポートの書き出しに失敗: %v\n", err)
		} else {
			fmt.Printf("✓ 実行レポートを書き出しました: %s\n", reportPath)
		}
	}

	// READMEの生成
	if !noReadme {
		gen := summary.NewReadmeGenerator(projectDir, outputDir, project.Name).
			WithRevision(summary.HeadRevision(ctx, projectDir))
		readmePath, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("READMEの生成に失敗: %w", err)
		}
		fmt.Printf("✓ README.md を生成しました: %s\n", readmePath)
	}

	// 一部のジョブが失敗しても終了コードは0（部分的成功は正常な結果）
	return nil
}

// ExportListAction はエクスポート対象のジョブ一覧を表示するコマンドのアクション
func ExportListAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(envFile)
	if err != nil {
		return err
	}
	cfg := appCtx.Config

	projectDir, err := resolveProjectDir(cmd)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(cmd, cfg, projectDir)

	project, err := kicad.DiscoverProject(projectDir)
	if err != nil {
		return fmt.Errorf("プロジェクトの特定に失敗: %w", err)
	}

	exporter := kicad.NewExporter(kicad.NewCLI(cfg.KiCad.BinPath, appCtx.Logger), project, kicad.ExporterOptions{
		OutputDir:    outputDir,
		GerberLayers: cfg.KiCad.GerberLayers,
		PosUnits:     cfg.KiCad.PosUnits,
		BOMFields:    cfg.KiCad.BOMFields,
		BOMGroupBy:   cfg.KiCad.BOMGroupBy,
	})

	fmt.Printf("プロジェクト: %s\n\n", project.Name)
	for _, aj := range exporter.Jobs() {
		outputPath := aj.Artifact.OutputPath
		if rel, err := filepath.Rel(projectDir, outputPath); err == nil {
			outputPath = rel
		}
		fmt.Printf("  %-16s %-14s -> %s\n", aj.Artifact.Kind, aj.Artifact.Title, outputPath)
	}

	return nil
}
