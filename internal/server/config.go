package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"SpringRibbon/internal/sim"
)

type springConfig struct {
	Stiffness     *float64 `json:"stiffness"`
	Damping       *float64 `json:"damping"`
	Physics       *bool    `json:"physics"`
	TangentLength *float64 `json:"tangentLength"`
	TangentCount  *int     `json:"tangentCount"`
	CurveSamples  *int     `json:"curveSamples"`
	Segments      *int     `json:"segments"`
}

type tuningConfig struct {
	Spring *springConfig `json:"spring"`
}

// ParamOverrides holds optional command-line overrides for the spring
// and sampling parameters. Nil fields keep the underlying value.
type ParamOverrides struct {
	Stiffness     *float64
	Damping       *float64
	Physics       *bool
	TangentLength *float64
	TangentCount  *int
	CurveSamples  *int
	Segments      *int
}

func (o ParamOverrides) apply(base sim.Params) sim.Params {
	if o.Stiffness != nil {
		base.Stiffness = *o.Stiffness
	}
	if o.Damping != nil {
		base.Damping = *o.Damping
	}
	if o.Physics != nil {
		base.PhysicsEnabled = *o.Physics
	}
	if o.TangentLength != nil {
		base.TangentLength = *o.TangentLength
	}
	if o.TangentCount != nil {
		base.TangentCount = *o.TangentCount
	}
	if o.CurveSamples != nil {
		base.CurveSamples = *o.CurveSamples
	}
	if o.Segments != nil {
		base.SegmentCount = *o.Segments
	}
	return sim.SanitizeParams(base)
}

func mergeSpringConfig(base sim.Params, cfg *springConfig) sim.Params {
	if cfg == nil {
		return base
	}
	if cfg.Stiffness != nil {
		base.Stiffness = *cfg.Stiffness
	}
	if cfg.Damping != nil {
		base.Damping = *cfg.Damping
	}
	if cfg.Physics != nil {
		base.PhysicsEnabled = *cfg.Physics
	}
	if cfg.TangentLength != nil {
		base.TangentLength = *cfg.TangentLength
	}
	if cfg.TangentCount != nil {
		base.TangentCount = *cfg.TangentCount
	}
	if cfg.CurveSamples != nil {
		base.CurveSamples = *cfg.CurveSamples
	}
	if cfg.Segments != nil {
		base.SegmentCount = *cfg.Segments
	}
	return sim.SanitizeParams(base)
}

func loadParamsFromFile(path string, base sim.Params) (sim.Params, error) {
	if path == "" {
		return sim.SanitizeParams(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return sim.SanitizeParams(base), nil
		}
		return sim.SanitizeParams(base), fmt.Errorf("read tuning config %q: %w", cleanPath, err)
	}
	var cfg tuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return sim.SanitizeParams(base), fmt.Errorf("parse tuning config %q: %w", cleanPath, err)
	}
	return mergeSpringConfig(base, cfg.Spring), nil
}
