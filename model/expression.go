package model

// ExpressionType distinguishes per-note values from sampled curves.
type ExpressionType string

const (
	Numerical ExpressionType = "numerical"
	CurveKind ExpressionType = "curve"
)

// Well-known expression abbreviations.
const (
	VelocityAbbr       = "vel"
	VolumeAbbr         = "vol"
	AttackAbbr         = "atk"
	DecayAbbr          = "dec"
	PitchDeviationAbbr = "pitd"
	DynamicsAbbr       = "dyn"
	OpeningAbbr        = "ope"
)

type ExpressionDescriptor struct {
	Name    string         `yaml:"name" json:"name"`
	Abbr    string         `yaml:"abbr" json:"abbr"`
	Type    ExpressionType `yaml:"type" json:"type"`
	Min     float64        `yaml:"min" json:"min"`
	Max     float64        `yaml:"max" json:"max"`
	Default float64        `yaml:"default" json:"default"`
}

// DefaultExpressions returns the expression set every new project starts
// with, keyed by abbreviation.
func DefaultExpressions() map[string]ExpressionDescriptor {
	descs := []ExpressionDescriptor{
		{Name: "velocity", Abbr: VelocityAbbr, Type: Numerical, Min: 0, Max: 200, Default: 100},
		{Name: "volume", Abbr: VolumeAbbr, Type: Numerical, Min: 0, Max: 200, Default: 100},
		{Name: "attack", Abbr: AttackAbbr, Type: Numerical, Min: 0, Max: 200, Default: 100},
		{Name: "decay", Abbr: DecayAbbr, Type: Numerical, Min: 0, Max: 100, Default: 0},
		{Name: "pitch deviation", Abbr: PitchDeviationAbbr, Type: CurveKind, Min: -1200, Max: 1200, Default: 0},
		{Name: "dynamics", Abbr: DynamicsAbbr, Type: CurveKind, Min: -240, Max: 120, Default: 0},
	}
	res := make(map[string]ExpressionDescriptor, len(descs))
	for _, d := range descs {
		res[d.Abbr] = d
	}
	return res
}
