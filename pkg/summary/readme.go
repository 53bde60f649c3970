package summary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// readmeTemplate は生成する README.md の本文です
// 各リンクはプロジェクトディレクトリからの相対パスで出力します
const readmeTemplate = `# {{.ProjectName}}
{{- if .Revision}}

Source revision: ` + "`{{.Revision}}`" + `
{{- end}}

## 🚀 How to generate fabrication outputs

Run the following command **from the project directory** (where the ` + "`.kicad_pro`" + ` file is located):

` + "```bash" + `
fab-export export run
` + "```" + `

To generate a zip of Gerbers for fabrication:

` + "```bash" + `
fab-export release
` + "```" + `

### 3D view
#### Top View
![]({{.TopView}})
#### Bottom View
![]({{.BottomView}})
#### Perspective View
![]({{.PerspectiveView}})

### Schematic
[{{.ProjectName}}_schematic.pdf]({{.SchematicPDF}})

### BOM
[{{.ProjectName}}_BOM.xlsx]({{.BOMXLSX}})

### Top Assembly
[{{.ProjectName}}_Top_Assembly.pdf]({{.TopAssembly}})

### Bottom Assembly
[{{.ProjectName}}_Bottom_Assembly.pdf]({{.BottomAssembly}})

### Interactive BOM
Download and open [ibom.html](bom/ibom.html) in browser
`

// readmeData はREADMEテンプレートに渡すデータです
type readmeData struct {
	ProjectName     string
	Revision        string
	TopView         string
	BottomView      string
	PerspectiveView string
	SchematicPDF    string
	BOMXLSX         string
	TopAssembly     string
	BottomAssembly  string
}

// ReadmeGenerator は生成済みの製造出力を一覧する README.md を組み立てます
type ReadmeGenerator struct {
	projectDir  string
	outputDir   string
	projectName string
	revision    string
}

// NewReadmeGenerator は新しいReadmeGeneratorを作成します
func NewReadmeGenerator(projectDir, outputDir, projectName string) *ReadmeGenerator {
	return &ReadmeGenerator{
		projectDir:  projectDir,
		outputDir:   outputDir,
		projectName: projectName,
	}
}

// WithRevision はREADMEに記載するソースリビジョンを設定します
// 空文字列の場合は記載されません
func (g *ReadmeGenerator) WithRevision(revision string) *ReadmeGenerator {
	g.revision = revision
	return g
}

// Render はREADME本文を組み立てて返します
func (g *ReadmeGenerator) Render() (string, error) {
	data := readmeData{
		ProjectName:     g.projectName,
		Revision:        g.revision,
		TopView:         g.relOutputPath(g.projectName + "_3D_top.png"),
		BottomView:      g.relOutputPath(g.projectName + "_3D_bottom.png"),
		PerspectiveView: g.relOutputPath(g.projectName + "_3D_perspective.png"),
		SchematicPDF:    g.relOutputPath(g.projectName + "_schematic.pdf"),
		BOMXLSX:         g.relOutputPath(g.projectName + "_BOM.xlsx"),
		TopAssembly:     g.relOutputPath(g.projectName + "_Top_Assembly.pdf"),
		BottomAssembly:  g.relOutputPath(g.projectName + "_Bottom_Assembly.pdf"),
	}

	tmpl, err := template.New("readme").Parse(readmeTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse readme template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render readme: %w", err)
	}
	return buf.String(), nil
}

// Generate はREADME.mdをプロジェクトディレクトリに書き出し、そのパスを返します
func (g *ReadmeGenerator) Generate() (string, error) {
	content, err := g.Render()
	if err != nil {
		return "", err
	}

	readmePath := filepath.Join(g.projectDir, "README.md")
	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write README.md: %w", err)
	}
	return readmePath, nil
}

// relOutputPath は出力ファイルのプロジェクトディレクトリ基準の相対パスを返します
func (g *ReadmeGenerator) relOutputPath(name string) string {
	target := filepath.Join(g.outputDir, name)
	rel, err := filepath.Rel(g.projectDir, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
