package server

import "SpringRibbon/internal/sim"

type pointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// tangentDTO anchors an unnormalized direction at a curve point. The
// client normalizes and scales to the configured arrow length.
type tangentDTO struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type controlDTO struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	TX    float64 `json:"tx"`
	TY    float64 `json:"ty"`
	Fixed bool    `json:"fixed"`
}

type paramsDTO struct {
	Stiffness     float64 `json:"stiffness"`
	Damping       float64 `json:"damping"`
	Physics       bool    `json:"physics"`
	TangentLength float64 `json:"tangent_length"`
	TangentCount  int     `json:"tangent_count"`
	CurveSamples  int     `json:"curve_samples"`
	Segments      int     `json:"segments"`
}

type roomMeta struct {
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Hz       float64 `json:"hz"`
	StiffMin float64 `json:"stiff_min"`
	StiffMax float64 `json:"stiff_max"`
	DampMin  float64 `json:"damp_min"`
	DampMax  float64 `json:"damp_max"`
	MaxSegs  int     `json:"max_segments"`
}

type stateMsg struct {
	Type     string       `json:"type"` // "state"
	Now      float64      `json:"now"`
	Points   []pointDTO   `json:"points"`
	Tangents []tangentDTO `json:"tangents"`
	Controls []controlDTO `json:"controls"`
	Params   paramsDTO    `json:"params"`
	Meta     roomMeta     `json:"meta"`
}

func paramsToDTO(p sim.Params) paramsDTO {
	return paramsDTO{
		Stiffness:     p.Stiffness,
		Damping:       p.Damping,
		Physics:       p.PhysicsEnabled,
		TangentLength: p.TangentLength,
		TangentCount:  p.TangentCount,
		CurveSamples:  p.CurveSamples,
		Segments:      p.SegmentCount,
	}
}

func metaFor(ch *sim.Chain) roomMeta {
	return roomMeta{
		W:        ch.Width,
		H:        ch.Height,
		Hz:       sim.SimHz,
		StiffMin: sim.MinStiffness,
		StiffMax: sim.MaxStiffness,
		DampMin:  sim.MinDamping,
		DampMax:  sim.MaxDamping,
		MaxSegs:  sim.MaxSegments,
	}
}
