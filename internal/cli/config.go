package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/dwdecomp/incidence"
)

// Config carries the tunables shared by the graph-building commands,
// loadable from a TOML file.
type Config struct {
	Weights    WeightsConfig    `toml:"weights"`
	Clustering ClusteringConfig `toml:"clustering"`
}

// WeightsConfig selects the node weights per constraint/variable kind.
type WeightsConfig struct {
	Constraint int `toml:"constraint"`
	Binary     int `toml:"binary"`
	Continuous int `toml:"continuous"`
	Integer    int `toml:"integer"`
	Implicit   int `toml:"implicit"`
	Base       int `toml:"base"`
}

// ClusteringConfig selects the similarity measure and clustering knobs
// for the weighted row graph.
type ClusteringConfig struct {
	Measure    string  `toml:"measure"` // intersection, jaccard, cosine
	Normalized bool    `toml:"normalized"`
	Threshold  float64 `toml:"threshold"` // MST similarity cut
	Inflation  float64 `toml:"inflation"` // MCL inflation factor
}

// defaultConfig mirrors the uniform defaults of the library.
func defaultConfig() Config {
	return Config{
		Weights: WeightsConfig{
			Constraint: 1, Binary: 1, Continuous: 1, Integer: 1, Implicit: 1, Base: 1,
		},
		Clustering: ClusteringConfig{
			Measure:   "jaccard",
			Threshold: 0.5,
			Inflation: 2.0,
		},
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path
// (empty path keeps the defaults).
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// weights converts the config section into the incidence scheme.
func (c Config) weights() incidence.Weights {
	w := c.Weights

	return incidence.NewWeights(w.Constraint, w.Binary, w.Continuous, w.Integer, w.Implicit, w.Base)
}

// measure resolves the configured similarity measure and weight type.
func (c Config) measure() (incidence.DistanceMeasure, incidence.WeightType, error) {
	wtype := incidence.WeightRaw
	if c.Clustering.Normalized {
		wtype = incidence.WeightNormalized
	}
	switch c.Clustering.Measure {
	case "intersection":
		return incidence.MeasureIntersection, wtype, nil
	case "jaccard", "":
		return incidence.MeasureJaccard, wtype, nil
	case "cosine":
		return incidence.MeasureCosine, wtype, nil
	}

	return 0, 0, errors.Errorf("unknown similarity measure %q", c.Clustering.Measure)
}
