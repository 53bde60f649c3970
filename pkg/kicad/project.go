package kicad

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrProjectNotFound はディレクトリに .kicad_pro ファイルが無いことを表します
var ErrProjectNotFound = errors.New("no .kicad_pro file found")

// Project はエクスポート対象のKiCadプロジェクトを表します
type Project struct {
	Dir  string // プロジェクトディレクトリ（絶対パス）
	Name string // .kicad_pro のベース名
}

// DiscoverProject は dir を走査して .kicad_pro ファイルからプロジェクトを特定します
// 見つからない場合は致命的前提条件エラーとなり、ジョブは一切投入されません
func DiscoverProject(dir string) (*Project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read project directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".kicad_pro") {
			return &Project{
				Dir:  absDir,
				Name: strings.TrimSuffix(entry.Name(), ".kicad_pro"),
			}, nil
		}
	}

	return nil, fmt.Errorf("%w in %s", ErrProjectNotFound, absDir)
}

// SchematicPath はルート回路図ファイルのパスを返します
func (p *Project) SchematicPath() string {
	return filepath.Join(p.Dir, p.Name+".kicad_sch")
}

// PCBPath は基板ファイルのパスを返します
func (p *Project) PCBPath() string {
	return filepath.Join(p.Dir, p.Name+".kicad_pcb")
}

// Validate は回路図・基板ファイルの存在を確認します
// どちらかが欠けている場合は致命的前提条件エラーです
func (p *Project) Validate() error {
	if _, err := os.Stat(p.SchematicPath()); err != nil {
		return fmt.Errorf("schematic file not found: %s", p.SchematicPath())
	}
	if _, err := os.Stat(p.PCBPath()); err != nil {
		return fmt.Errorf("pcb file not found: %s", p.PCBPath())
	}
	return nil
}
