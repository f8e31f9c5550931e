package model

// VoicePart is a contiguous span of notes and curves on a track. Note and
// curve positions are relative to the part's own Position.
type VoicePart struct {
	Name     string   `yaml:"name" json:"name"`
	TrackNo  int      `yaml:"track_no" json:"trackNo"`
	Position int      `yaml:"position" json:"position"`
	Duration int      `yaml:"duration" json:"duration"`
	Notes    []*Note  `yaml:"notes" json:"notes"`
	Curves   []*Curve `yaml:"curves,omitempty" json:"curves,omitempty"`
}

// End is the part's end position in project ticks.
func (p *VoicePart) End() int {
	return p.Position + p.Duration
}
