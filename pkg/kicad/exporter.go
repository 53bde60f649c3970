package kicad

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinford/fab-export/pkg/models"
	"github.com/jinford/fab-export/pkg/runner"
)

// GerbersDirName は製造データをまとめるサブディレクトリ名
const GerbersDirName = "Gerbers"

// ExporterOptions はエクスポートの出力先とツール引数の設定です
type ExporterOptions struct {
	OutputDir    string // 出力ディレクトリ（絶対パス）
	GerberLayers string // Gerber出力の層リスト（カンマ区切り）
	PosUnits     string // 部品座標ファイルの単位
	BOMFields    string // BOMに出力するフィールド
	BOMGroupBy   string // BOMのグループ化キー
}

// ArtifactJob は1つの製造出力と、それを生成するジョブの組です
type ArtifactJob struct {
	Artifact models.Artifact
	Job      runner.Job
}

// Exporter は各製造出力のエクスポートジョブを組み立てます
// 各ジョブは互いに独立で、出力先のパスは重複しません
type Exporter struct {
	cli     *CLI
	project *Project
	opts    ExporterOptions
}

// NewExporter は新しいExporterを作成します
func NewExporter(cli *CLI, project *Project, opts ExporterOptions) *Exporter {
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join(project.Dir, "output")
	}
	if opts.PosUnits == "" {
		opts.PosUnits = "mm"
	}

	return &Exporter{
		cli:     cli,
		project: project,
		opts:    opts,
	}
}

// OutputDir は出力ディレクトリのパスを返します
func (e *Exporter) OutputDir() string {
	return e.opts.OutputDir
}

// GerbersDir は製造データ用サブディレクトリのパスを返します
func (e *Exporter) GerbersDir() string {
	return filepath.Join(e.opts.OutputDir, GerbersDirName)
}

// EnsureOutputDirs は出力ディレクトリを事前に作成します
// ジョブ同士がディレクトリ作成で競合しないよう、投入前に一度だけ呼び出します
func (e *Exporter) EnsureOutputDirs() error {
	if err := os.MkdirAll(e.GerbersDir(), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Jobs は全11種の製造出力ジョブを定義順で返します
func (e *Exporter) Jobs() []ArtifactJob {
	return []ArtifactJob{
		e.schematicPDF(),
		e.schematicSVG(),
		e.erc(),
		e.drc(),
		e.bom(),
		e.gerbers(),
		e.drill(),
		e.position(),
		e.topAssembly(),
		e.bottomAssembly(),
		e.render3D(),
	}
}

func (e *Exporter) schematicPDF() ArtifactJob {
	out := filepath.Join(e.opts.OutputDir, e.project.Name+"_schematic.pdf")
	return e.commandJob(models.ArtifactSchematicPDF, "回路図PDF", out,
		[]string{"sch", "export", "pdf", e.project.SchematicPath(), "--output", out},
		out,
	)
}

func (e *Exporter) schematicSVG() ArtifactJob {
	out := filepath.Join(e.opts.OutputDir, e.project.Name+"_schematic.svg")
	return e.commandJob(models.ArtifactSchematicSVG, "回路図SVG", out,
		[]string{"sch", "export", "svg", e.project.SchematicPath(), "--output", out},
		out,
	)
}

func (e *Exporter) erc() ArtifactJob {
	out := filepath.Join(e.opts.OutputDir, "erc_report.txt")
	return e.commandJob(models.ArtifactERC, "ERCレポート", out,
		[]string{"sch", "erc", e.project.SchematicPath(), "--output", out},
		out,
	)
}

func (e *Exporter) drc() ArtifactJob {
	out := filepath.Join(e.opts.OutputDir, "drc_report.txt")
	return e.commandJob(models.ArtifactDRC, "DRCレポート", out,
		[]string{"pcb", "drc", e.project.PCBPath(), "--output", out},
		out,
	)
}

func (e *Exporter) gerbers() ArtifactJob {
	// 出力先はディレクトリなのでファイル単位の存在確認は行わない
	return e.commandJob(models.ArtifactGerbers, "ガーバー", e.GerbersDir(),
		[]string{
			"pcb", "export", "gerbers", e.project.PCBPath(),
			"--board-plot-params",
			"--layers", e.opts.GerberLayers,
			"--output", e.GerbersDir(),
		},
		"",
	)
}

func (e *Exporter) drill() ArtifactJob {
	return e.commandJob(models.ArtifactDrill, "ドリルファイル", e.GerbersDir(),
		[]string{"pcb", "export", "drill", e.project.PCBPath(), "--output", e.GerbersDir()},
		"",
	)
}

func (e *Exporter) position() ArtifactJob {
	out := filepath.Join(e.GerbersDir(), e.project.Name+"-all-pos.csv")
	return e.commandJob(models.ArtifactPosition, "部品座標CSV", out,
		[]string{
			"pcb", "export", "pos", e.project.PCBPath(),
			"--format", "csv", "--units", e.opts.PosUnits, "--exclude-dnp",
			"--output", out,
		},
		out,
	)
}

func (e *Exporter) topAssembly() ArtifactJob {
	out := filepath.Join(e.opts.OutputDir, e.project.Name+"_Top_Assembly.pdf")
	return e.commandJob(models.ArtifactAssemblyTop, "組立図（表面）", out,
		[]string{
			"pcb", "export", "pdf", e.project.PCBPath(),
			"--layers", "F.Mask,F.Silkscreen,Edge.Cuts",
			"--black-and-white", "--output", out,
		},
		out,
	)
}

func (e *Exporter) bottomAssembly() ArtifactJob {
	out := filepath.Join(e.opts.OutputDir, e.project.Name+"_Bottom_Assembly.pdf")
	return e.commandJob(models.ArtifactAssemblyBottom, "組立図（裏面）", out,
		[]string{
			"pcb", "export", "pdf", e.project.PCBPath(),
			"--layers", "B.Mask,B.Silkscreen,Edge.Cuts",
			"--black-and-white", "--mirror", "--output", out,
		},
		out,
	)
}

func (e *Exporter) bom() ArtifactJob {
	csvPath := filepath.Join(e.opts.OutputDir, e.project.Name+"_BOM.csv")
	xlsxPath := filepath.Join(e.opts.OutputDir, e.project.Name+"_BOM.xlsx")

	args := []string{
		"sch", "export", "bom", e.project.SchematicPath(),
		"--group-by", e.opts.BOMGroupBy,
		"--ref-range-delimiter", "",
		"--fields", e.opts.BOMFields,
		"--output", csvPath,
	}

	return ArtifactJob{
		Artifact: models.Artifact{
			Kind:       models.ArtifactBOM,
			Title:      "BOM",
			OutputPath: xlsxPath,
		},
		Job: runner.Job{
			Name: string(models.ArtifactBOM),
			Action: func(ctx context.Context) (bool, error) {
				ok, err := e.runChecked(ctx, args, csvPath)
				if err != nil || !ok {
					return ok, err
				}

				// CSVをExcelブックに変換する
				if err := convertCSVToXLSX(csvPath, xlsxPath); err != nil {
					return false, fmt.Errorf("failed to convert BOM to xlsx: %w", err)
				}
				return true, nil
			},
		},
	}
}

func (e *Exporter) render3D() ArtifactJob {
	topOut := filepath.Join(e.opts.OutputDir, e.project.Name+"_3D_top.png")
	bottomOut := filepath.Join(e.opts.OutputDir, e.project.Name+"_3D_bottom.png")
	perspOut := filepath.Join(e.opts.OutputDir, e.project.Name+"_3D_perspective.png")

	renders := []struct {
		args   []string
		output string
	}{
		{
			args:   []string{"pcb", "render", e.project.PCBPath(), "--side", "top", "--output", topOut},
			output: topOut,
		},
		{
			args:   []string{"pcb", "render", e.project.PCBPath(), "--side", "bottom", "--output", bottomOut},
			output: bottomOut,
		},
		{
			args:   []string{"pcb", "render", e.project.PCBPath(), "--side", "top", "--perspective", "--rotate", "315,0,0", "--output", perspOut},
			output: perspOut,
		},
	}

	return ArtifactJob{
		Artifact: models.Artifact{
			Kind:       models.ArtifactRender3D,
			Title:      "3Dレンダリング",
			OutputPath: topOut,
		},
		Job: runner.Job{
			Name: string(models.ArtifactRender3D),
			Action: func(ctx context.Context) (bool, error) {
				// 3方向すべてのレンダリングが揃って初めて成功とする
				allOK := true
				for _, r := range renders {
					ok, err := e.runChecked(ctx, r.args, r.output)
					if err != nil {
						return false, err
					}
					if !ok {
						allOK = false
					}
				}
				return allOK, nil
			},
		},
	}
}

// commandJob は「kicad-cli を1回実行して出力ファイルの存在を確認する」ジョブを作ります
// expect が空文字列の場合は存在確認を行いません（ディレクトリ出力向け）
func (e *Exporter) commandJob(kind models.ArtifactKind, title, artifactPath string, args []string, expect string) ArtifactJob {
	return ArtifactJob{
		Artifact: models.Artifact{
			Kind:       kind,
			Title:      title,
			OutputPath: artifactPath,
		},
		Job: runner.Job{
			Name: string(kind),
			Action: func(ctx context.Context) (bool, error) {
				return e.runChecked(ctx, args, expect)
			},
		},
	}
}

// runChecked は kicad-cli を実行し、expect が指定されていれば出力の存在を確認します
// ツールの非ゼロ終了と期待出力の欠落は失敗（false）、起動自体の失敗はエラーとして返します
func (e *Exporter) runChecked(ctx context.Context, args []string, expect string) (bool, error) {
	if err := e.cli.Run(ctx, args...); err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			return false, nil
		}
		return false, err
	}

	if expect != "" {
		if _, err := os.Stat(expect); err != nil {
			return false, nil
		}
	}
	return true, nil
}
