package models

// ArtifactKind は生成する製造出力の種別を表します
type ArtifactKind string

const (
	ArtifactSchematicPDF   ArtifactKind = "schematic_pdf"
	ArtifactSchematicSVG   ArtifactKind = "schematic_svg"
	ArtifactERC            ArtifactKind = "erc"
	ArtifactDRC            ArtifactKind = "drc"
	ArtifactBOM            ArtifactKind = "bom"
	ArtifactGerbers        ArtifactKind = "gerbers"
	ArtifactDrill          ArtifactKind = "drill"
	ArtifactPosition       ArtifactKind = "position"
	ArtifactAssemblyTop    ArtifactKind = "assembly_top"
	ArtifactAssemblyBottom ArtifactKind = "assembly_bottom"
	ArtifactRender3D       ArtifactKind = "render_3d"
)

// AllArtifactKinds は全種別を定義順で返します
func AllArtifactKinds() []ArtifactKind {
	return []ArtifactKind{
		ArtifactSchematicPDF,
		ArtifactSchematicSVG,
		ArtifactERC,
		ArtifactDRC,
		ArtifactBOM,
		ArtifactGerbers,
		ArtifactDrill,
		ArtifactPosition,
		ArtifactAssemblyTop,
		ArtifactAssemblyBottom,
		ArtifactRender3D,
	}
}

// Artifact は1つの製造出力を表します
type Artifact struct {
	Kind       ArtifactKind `json:"kind"`
	Title      string       `json:"title"`      // 表示用タイトル
	OutputPath string       `json:"outputPath"` // 代表的な出力先パス
}
