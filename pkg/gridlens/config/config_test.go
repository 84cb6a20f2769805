package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlens/gridlens-go/pkg/gridlens/metrics"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Detection.MinHeaderCells)
	assert.Equal(t, 4, cfg.Detection.TitleBlankSpan)
	assert.Equal(t, 10, cfg.Detection.MinTitleLen)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Rules(), "built-in rules apply when none configured")
}

func TestLoadFile(t *testing.T) {
	content := `
logging:
  level: debug
detection:
  min_header_cells: 2
metrics:
  - label: "Receita total"
    substrings: ["Receita"]
    aggregation: sum
`
	path := filepath.Join(t.TempDir(), "gridlens.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Detection.MinHeaderCells)
	// Unset file keys keep their defaults.
	assert.Equal(t, 4, cfg.Detection.TitleBlankSpan)

	rules := cfg.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, metrics.Rule{
		Label:       "Receita total",
		Substrings:  []string{"Receita"},
		Aggregation: metrics.AggregationSum,
	}, rules[0])
}

func TestLoadEnvOverridesFile(t *testing.T) {
	content := "detection:\n  min_header_cells: 2\n"
	path := filepath.Join(t.TempDir(), "gridlens.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("GRIDLENS_DETECTION_MIN_HEADER_CELLS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Detection.MinHeaderCells)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestDetectionParams(t *testing.T) {
	cfg := Default()
	params := cfg.DetectionParams()
	assert.Equal(t, 3, params.MinHeaderCells)
	assert.Equal(t, 4, params.TitleBlankSpan)
	assert.Equal(t, 10, params.MinTitleLen)
}
