// Package config provides the YAML-driven tunables for the reference
// builder, externalizing the Open Questions spec.md §9 leaves to
// configuration rather than hard-coded behavior.
package config

import (
	"os"

	"github.com/comparative-genomics/cactusgraph/graphutil"
	"gopkg.in/yaml.v3"
)

// ReferenceConfig holds the reference builder's tunable knobs.
type ReferenceConfig struct {
	// MaxChainsPerRound is the batch size X in spec §4.3.5's top-level loop.
	// A value larger than the number of chains remaining in a round simply
	// truncates to what's left (Open Question 3).
	MaxChainsPerRound int `yaml:"maxChainsPerRound"`

	// RecalculateEachCycle selects between re-running the matcher every
	// round versus trusting the existing clique lookup for already-matched
	// edges (spec §4.3.5).
	RecalculateEachCycle bool `yaml:"recalculateEachCycle"`

	// MatchWeighting resolves Open Question 2: whether the external matcher
	// (and the cyclic-repair heuristic) should prefer heavier or lighter
	// edges. Defaults to Max.
	MatchWeighting graphutil.Weighting `yaml:"-"`
	MatchWeightingName string        `yaml:"matchWeighting"`
}

// DefaultReferenceConfig returns the builder's defaults: unlimited batch
// size per round (resolved against the actual remaining count at runtime),
// recalculating the matcher every cycle, and maximum-weight matching.
func DefaultReferenceConfig() ReferenceConfig {
	return ReferenceConfig{
		MaxChainsPerRound:    1 << 30,
		RecalculateEachCycle: true,
		MatchWeighting:       graphutil.Max,
		MatchWeightingName:   "max",
	}
}

// Load reads a ReferenceConfig from a YAML file at path, filling in
// DefaultReferenceConfig for anything the file omits.
func Load(path string) (ReferenceConfig, error) {
	cfg := DefaultReferenceConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.MatchWeighting = weightingFromName(cfg.MatchWeightingName)
	return cfg, nil
}

func weightingFromName(s string) graphutil.Weighting {
	if s == "min" {
		return graphutil.Min
	}
	return graphutil.Max
}
