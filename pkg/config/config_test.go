package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "kicad-cli", cfg.KiCad.BinPath)
	assert.Equal(t, DefaultGerberLayers, cfg.KiCad.GerberLayers)
	assert.Equal(t, "mm", cfg.KiCad.PosUnits)
	assert.Equal(t, DefaultBOMFields, cfg.KiCad.BOMFields)
	assert.Equal(t, DefaultBOMGroupBy, cfg.KiCad.BOMGroupBy)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("KICAD_CLI_PATH", "/opt/kicad/bin/kicad-cli")
	t.Setenv("FAB_OUTPUT_DIR", "fab")
	t.Setenv("FAB_WORKERS", "2")
	t.Setenv("FAB_POS_UNITS", "in")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/opt/kicad/bin/kicad-cli", cfg.KiCad.BinPath)
	assert.Equal(t, "fab", cfg.OutputDir)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "in", cfg.KiCad.PosUnits)
}

func TestLoad_InvalidWorkers(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{
			name:     "数値でない値（デフォルトにフォールバック）",
			value:    "many",
			expected: 4,
		},
		{
			name:     "0以下の値（デフォルトにフォールバック）",
			value:    "-3",
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FAB_WORKERS", tt.value)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers)
		})
	}
}

func TestLoad_MissingEnvFileIsNotAnError(t *testing.T) {
	cfg, err := Load("/nonexistent/.env")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
