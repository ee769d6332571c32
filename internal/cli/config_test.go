package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdecomp/incidence"
	"github.com/katalvlaran/dwdecomp/problem"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Weights.Constraint)
	assert.Equal(t, "jaccard", cfg.Clustering.Measure)
	assert.Equal(t, 0.5, cfg.Clustering.Threshold)
	assert.Equal(t, 2.0, cfg.Clustering.Inflation)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dwdec.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[weights]
constraint = 5
binary = 3

[clustering]
measure = "cosine"
threshold = 0.25
`), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Weights.Constraint)
	assert.Equal(t, 3, cfg.Weights.Binary)
	assert.Equal(t, 1, cfg.Weights.Continuous) // untouched keys keep defaults
	assert.Equal(t, "cosine", cfg.Clustering.Measure)
	assert.Equal(t, 0.25, cfg.Clustering.Threshold)

	w := cfg.weights()
	assert.Equal(t, 5, w.Constraint())
	assert.Equal(t, 3, w.Variable(problem.Binary))
}

func TestConfig_Measure(t *testing.T) {
	cfg := defaultConfig()
	m, wt, err := cfg.measure()
	require.NoError(t, err)
	assert.Equal(t, incidence.MeasureJaccard, m)
	assert.Equal(t, incidence.WeightRaw, wt)

	cfg.Clustering.Measure = "intersection"
	cfg.Clustering.Normalized = true
	m, wt, err = cfg.measure()
	require.NoError(t, err)
	assert.Equal(t, incidence.MeasureIntersection, m)
	assert.Equal(t, incidence.WeightNormalized, wt)

	cfg.Clustering.Measure = "euclid"
	_, _, err = cfg.measure()
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
