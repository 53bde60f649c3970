package summary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadmeGeneratorRender(t *testing.T) {
	projectDir := "/work/sensor-board"
	outputDir := "/work/sensor-board/output"

	gen := NewReadmeGenerator(projectDir, outputDir, "sensor-board")
	content, err := gen.Render()
	require.NoError(t, err)

	// 見出しと相対パスのリンクを確認
	assert.True(t, strings.HasPrefix(content, "# sensor-board"))
	assert.Contains(t, content, "![](output/sensor-board_3D_top.png)")
	assert.Contains(t, content, "![](output/sensor-board_3D_bottom.png)")
	assert.Contains(t, content, "![](output/sensor-board_3D_perspective.png)")
	assert.Contains(t, content, "[sensor-board_schematic.pdf](output/sensor-board_schematic.pdf)")
	assert.Contains(t, content, "[sensor-board_BOM.xlsx](output/sensor-board_BOM.xlsx)")
	assert.Contains(t, content, "[sensor-board_Top_Assembly.pdf](output/sensor-board_Top_Assembly.pdf)")
	assert.Contains(t, content, "[sensor-board_Bottom_Assembly.pdf](output/sensor-board_Bottom_Assembly.pdf)")
	assert.Contains(t, content, "fab-export export run")

	// リビジョン未設定の場合は記載されない
	assert.NotContains(t, content, "Source revision")
}

func TestReadmeGeneratorRender_WithRevision(t *testing.T) {
	gen := NewReadmeGenerator("/work/board", "/work/board/output", "board").
		WithRevision("a1b2c3d")

	content, err := gen.Render()
	require.NoError(t, err)
	assert.Contains(t, content, "Source revision: `a1b2c3d`")
}

func TestReadmeGeneratorGenerate(t *testing.T) {
	projectDir := t.TempDir()
	outputDir := filepath.Join(projectDir, "output")

	gen := NewReadmeGenerator(projectDir, outputDir, "board")
	readmePath, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(projectDir, "README.md"), readmePath)

	data, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# board")
}

func TestHeadRevision_NotARepository(t *testing.T) {
	// gitリポジトリでないディレクトリでは空文字列を返す
	revision := HeadRevision(context.Background(), t.TempDir())
	assert.Equal(t, "", revision)
}
