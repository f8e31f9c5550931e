package model

import (
	"fmt"
	"sort"

	"github.com/GuglioIsStupid/OpenUtau/constants"
)

// TimeSignature is a meter change taking effect at a bar position.
type TimeSignature struct {
	BarPosition int `yaml:"bar_position" json:"barPosition"`
	BeatPerBar  int `yaml:"beat_per_bar" json:"beatPerBar"`
	BeatUnit    int `yaml:"beat_unit" json:"beatUnit"`
}

// Tempo is a tempo change taking effect at a tick position.
type Tempo struct {
	Position int     `yaml:"position" json:"position"`
	BPM      float64 `yaml:"bpm" json:"bpm"`
}

// Project is the destination model populated by importers. Positions and
// durations everywhere in it are ticks at Resolution per quarter note.
type Project struct {
	Name           string                          `yaml:"name" json:"name"`
	Comment        string                          `yaml:"comment,omitempty" json:"comment,omitempty"`
	Resolution     int                             `yaml:"resolution" json:"resolution"`
	TimeSignatures []TimeSignature                 `yaml:"time_signatures" json:"timeSignatures"`
	Tempos         []Tempo                         `yaml:"tempos" json:"tempos"`
	Expressions    map[string]ExpressionDescriptor `yaml:"expressions" json:"expressions"`
	Tracks         []*Track                        `yaml:"tracks" json:"tracks"`
	Parts          []*VoicePart                    `yaml:"voice_parts" json:"voiceParts"`
}

func New() *Project {
	return &Project{
		Resolution:  constants.Resolution,
		Expressions: DefaultExpressions(),
	}
}

// AfterLoad normalizes a freshly populated project: timing lists become
// non-empty, sorted and anchored at the origin, tracks are renumbered and
// parts are ordered by position.
func (p *Project) AfterLoad() {
	if len(p.TimeSignatures) == 0 {
		p.TimeSignatures = []TimeSignature{{
			BarPosition: 0,
			BeatPerBar:  constants.DefaultBeatPerBar,
			BeatUnit:    constants.DefaultBeatUnit,
		}}
	}
	sort.SliceStable(p.TimeSignatures, func(i, j int) bool {
		return p.TimeSignatures[i].BarPosition < p.TimeSignatures[j].BarPosition
	})
	p.TimeSignatures[0].BarPosition = 0

	if len(p.Tempos) == 0 {
		p.Tempos = []Tempo{{Position: 0, BPM: constants.DefaultBPM}}
	}
	sort.SliceStable(p.Tempos, func(i, j int) bool {
		return p.Tempos[i].Position < p.Tempos[j].Position
	})
	p.Tempos[0].Position = 0

	for i, track := range p.Tracks {
		track.TrackNo = i
	}
	sort.SliceStable(p.Parts, func(i, j int) bool {
		return p.Parts[i].Position < p.Parts[j].Position
	})
	for _, part := range p.Parts {
		if part.Position < 0 {
			part.Position = 0
		}
		if part.Duration < 0 {
			part.Duration = 0
		}
	}
}

// Validate checks the invariants every loaded project must satisfy and
// returns an error naming the first violation.
func (p *Project) Validate() error {
	if len(p.TimeSignatures) == 0 {
		return fmt.Errorf("project has no time signatures")
	}
	if p.TimeSignatures[0].BarPosition != 0 {
		return fmt.Errorf("first time signature is at bar %d, not 0", p.TimeSignatures[0].BarPosition)
	}
	for i := 1; i < len(p.TimeSignatures); i++ {
		if p.TimeSignatures[i].BarPosition < p.TimeSignatures[i-1].BarPosition {
			return fmt.Errorf("time signatures out of order at index %d", i)
		}
	}
	if len(p.Tempos) == 0 {
		return fmt.Errorf("project has no tempos")
	}
	if p.Tempos[0].Position != 0 {
		return fmt.Errorf("first tempo is at tick %d, not 0", p.Tempos[0].Position)
	}
	for i := 1; i < len(p.Tempos); i++ {
		if p.Tempos[i].Position < p.Tempos[i-1].Position {
			return fmt.Errorf("tempos out of order at index %d", i)
		}
	}
	for _, part := range p.Parts {
		if part.TrackNo < 0 || part.TrackNo >= len(p.Tracks) {
			return fmt.Errorf("part %q references track %d of %d", part.Name, part.TrackNo, len(p.Tracks))
		}
		if part.Position < 0 {
			return fmt.Errorf("part %q has negative position %d", part.Name, part.Position)
		}
		for _, note := range part.Notes {
			if note.Position < 0 {
				return fmt.Errorf("part %q has a note at negative position %d", part.Name, note.Position)
			}
		}
		for _, curve := range part.Curves {
			for i := 1; i < len(curve.Xs); i++ {
				if curve.Xs[i] < curve.Xs[i-1] {
					return fmt.Errorf("part %q curve %q has decreasing positions at index %d", part.Name, curve.Abbr, i)
				}
			}
		}
	}
	return nil
}

// RegisterExpression installs or replaces an expression descriptor.
func (p *Project) RegisterExpression(desc ExpressionDescriptor) {
	if p.Expressions == nil {
		p.Expressions = make(map[string]ExpressionDescriptor)
	}
	p.Expressions[desc.Abbr] = desc
}

// TrackParts returns the parts placed on the given track, in position order.
func (p *Project) TrackParts(trackNo int) []*VoicePart {
	var res []*VoicePart
	for _, part := range p.Parts {
		if part.TrackNo == trackNo {
			res = append(res, part)
		}
	}
	return res
}
