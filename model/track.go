package model

// Track is a named lane the project places voice parts on.
type Track struct {
	Name    string `yaml:"name" json:"name"`
	Muted   bool   `yaml:"muted,omitempty" json:"muted,omitempty"`
	TrackNo int    `yaml:"track_no" json:"trackNo"`
}
