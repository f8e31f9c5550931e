package model

import (
	"github.com/GuglioIsStupid/OpenUtau/util"
)

// ImportSummary is the wire shape returned by the HTTP import endpoint and
// printed by the import command.
type ImportSummary struct {
	Name           string          `json:"name"`
	Tracks         int             `json:"tracks"`
	Parts          int             `json:"parts"`
	Notes          int             `json:"notes"`
	Tempos         []Tempo         `json:"tempos"`
	TimeSignatures []TimeSignature `json:"timeSignatures"`
	Expressions    []string        `json:"expressions"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func Summarize(p *Project) ImportSummary {
	notes := 0
	for _, part := range p.Parts {
		notes += len(part.Notes)
	}
	return ImportSummary{
		Name:           p.Name,
		Tracks:         len(p.Tracks),
		Parts:          len(p.Parts),
		Notes:          notes,
		Tempos:         p.Tempos,
		TimeSignatures: p.TimeSignatures,
		Expressions:    util.SortedKeys(p.Expressions),
	}
}
