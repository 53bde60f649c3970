package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jinford/fab-export/pkg/config"
	"github.com/jinford/fab-export/pkg/kicad"
	"github.com/jinford/fab-export/pkg/models"
	"github.com/jinford/fab-export/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestFilterSkipped(t *testing.T) {
	jobs := []kicad.ArtifactJob{
		{Artifact: models.Artifact{Kind: models.ArtifactSchematicPDF}, Job: runner.Job{Name: "schematic_pdf"}},
		{Artifact: models.Artifact{Kind: models.ArtifactERC}, Job: runner.Job{Name: "erc"}},
		{Artifact: models.Artifact{Kind: models.ArtifactDRC}, Job: runner.Job{Name: "drc"}},
		{Artifact: models.Artifact{Kind: models.ArtifactRender3D}, Job: runner.Job{Name: "render_3d"}},
	}

	tests := []struct {
		name     string
		skip     string
		expected []models.ArtifactKind
	}{
		{
			name:     "除外なし",
			skip:     "",
			expected: []models.ArtifactKind{models.ArtifactSchematicPDF, models.ArtifactERC, models.ArtifactDRC, models.ArtifactRender3D},
		},
		{
			name:     "1種別を除外",
			skip:     "erc",
			expected: []models.ArtifactKind{models.ArtifactSchematicPDF, models.ArtifactDRC, models.ArtifactRender3D},
		},
		{
			name:     "複数種別を除外（空白込み）",
			skip:     "erc, drc ,render_3d",
			expected: []models.ArtifactKind{models.ArtifactSchematicPDF},
		},
		{
			name:     "未知の種別は無視",
			skip:     "unknown_kind",
			expected: []models.ArtifactKind{models.ArtifactSchematicPDF, models.ArtifactERC, models.ArtifactDRC, models.ArtifactRender3D},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := filterSkipped(jobs, tt.skip)

			var kinds []models.ArtifactKind
			for _, aj := range filtered {
				kinds = append(kinds, aj.Artifact.Kind)
			}
			assert.Equal(t, tt.expected, kinds)
		})
	}
}

func TestResolveOutputDir(t *testing.T) {
	cfg := &config.Config{OutputDir: "output"}
	projectDir := "/work/board"

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "未指定の場合は設定値をプロジェクトディレクトリ基準で解決",
			args:     []string{"test"},
			expected: filepath.Join(projectDir, "output"),
		},
		{
			name:     "相対パス指定",
			args:     []string{"test", "--output", "fab"},
			expected: filepath.Join(projectDir, "fab"),
		},
		{
			name:     "絶対パス指定はそのまま使う",
			args:     []string{"test", "--output", "/tmp/fab-out"},
			expected: "/tmp/fab-out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolved string
			cmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					resolved = resolveOutputDir(c, cfg, projectDir)
					return nil
				},
			}

			require.NoError(t, cmd.Run(context.Background(), tt.args))
			assert.Equal(t, tt.expected, resolved)
		})
	}
}

func TestExportRunAction_FatalPrecondition(t *testing.T) {
	// プロジェクトファイルが無いディレクトリではジョブを投入せずエラーで中断する
	emptyDir := t.TempDir()

	cmd := &cli.Command{
		Name: "run",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env"},
			&cli.StringFlag{Name: "project-dir"},
			&cli.StringFlag{Name: "output"},
			&cli.IntFlag{Name: "workers"},
			&cli.StringFlag{Name: "skip"},
			&cli.BoolFlag{Name: "no-readme"},
			&cli.StringFlag{Name: "report"},
		},
		Action: ExportRunAction,
	}

	err := cmd.Run(context.Background(), []string{"run", "--project-dir", emptyDir})
	require.Error(t, err)
	assert.ErrorIs(t, err, kicad.ErrProjectNotFound)
}
