package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Gerber出力の既定の層リスト（4層基板＋マスク・ペースト・シルク・外形）
const DefaultGerberLayers = "F.Cu,In1.Cu,In2.Cu,B.Cu,F.Mask,B.Mask,F.Paste,B.Paste,F.Silkscreen,B.Silkscreen,Edge.Cuts"

// BOM出力の既定のフィールド・グループ化設定
const (
	DefaultBOMFields  = "${ITEM_NUMBER},Reference,Value,Footprint,Description,${QUANTITY},${DNP},MPN,SKU,Link"
	DefaultBOMGroupBy = "Value,Footprint,${DNP}"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// KiCad CLI設定
	KiCad KiCadConfig

	// 出力ディレクトリ（プロジェクトディレクトリからの相対パス可）
	OutputDir string

	// ワーカープールの同時実行数
	Workers int
}

// KiCadConfig は kicad-cli の起動設定
type KiCadConfig struct {
	BinPath      string // kicad-cli のパス
	GerberLayers string // Gerber出力の層リスト（カンマ区切り）
	PosUnits     string // 部品座標ファイルの単位（mm / in）
	BOMFields    string // BOMに出力するフィールド
	BOMGroupBy   string // BOMのグループ化キー
}

// Load は環境変数または.envファイルから設定を読み込みます
func Load(envFilePath string) (*Config, error) {
	// .envファイルが存在する場合は読み込む
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// ファイルが存在しない場合はエラーとしない（環境変数のみで動作可能）
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		KiCad: KiCadConfig{
			BinPath:      getEnv("KICAD_CLI_PATH", "kicad-cli"),
			GerberLayers: getEnv("FAB_GERBER_LAYERS", DefaultGerberLayers),
			PosUnits:     getEnv("FAB_POS_UNITS", "mm"),
			BOMFields:    getEnv("FAB_BOM_FIELDS", DefaultBOMFields),
			BOMGroupBy:   getEnv("FAB_BOM_GROUP_BY", DefaultBOMGroupBy),
		},
		OutputDir: getEnv("FAB_OUTPUT_DIR", "output"),
		Workers:   getEnvAsInt("FAB_WORKERS", 4),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return cfg, nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt は環境変数を整数として取得します
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
