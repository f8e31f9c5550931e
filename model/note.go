package model

// Note is a single sung note inside a voice part. Phonemes is a manual
// pronunciation override; empty means the singer's default applies.
type Note struct {
	Position    int                `yaml:"position" json:"position"`
	Duration    int                `yaml:"duration" json:"duration"`
	Tone        int                `yaml:"tone" json:"tone"`
	Lyric       string             `yaml:"lyric" json:"lyric"`
	Phonemes    string             `yaml:"phonemes,omitempty" json:"phonemes,omitempty"`
	Vibrato     Vibrato            `yaml:"vibrato,omitempty" json:"vibrato,omitempty"`
	Expressions map[string]float64 `yaml:"expressions,omitempty" json:"expressions,omitempty"`
}

// Vibrato describes the pitch wobble shape of a note. Zero values leave the
// renderer's defaults in place.
type Vibrato struct {
	In     float64 `yaml:"in,omitempty" json:"in,omitempty"`
	Out    float64 `yaml:"out,omitempty" json:"out,omitempty"`
	Left   float64 `yaml:"left,omitempty" json:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty" json:"right,omitempty"`
	Depth  float64 `yaml:"depth,omitempty" json:"depth,omitempty"`
	Period float64 `yaml:"period,omitempty" json:"period,omitempty"`
}

// End is the note's end position relative to its part.
func (n *Note) End() int {
	return n.Position + n.Duration
}

// SetExpression stores a per-note expression value.
func (n *Note) SetExpression(abbr string, value float64) {
	if n.Expressions == nil {
		n.Expressions = make(map[string]float64)
	}
	n.Expressions[abbr] = value
}

// Expression reads a per-note expression value.
func (n *Note) Expression(abbr string) (float64, bool) {
	v, ok := n.Expressions[abbr]
	return v, ok
}
