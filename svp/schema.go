package svp

// Descriptors mirror the subset of the Synthesizer V Studio project schema
// the importer reads. Unknown fields are ignored by decoding; optional
// fields are pointers so an explicit null stays distinguishable from a
// present value.

type projectDescriptor struct {
	Version int64             `json:"version"`
	Time    *timeDescriptor   `json:"time"`
	Tracks  []trackDescriptor `json:"tracks"`
	Library []groupDescriptor `json:"library"`
}

type timeDescriptor struct {
	Meter []meterDescriptor `json:"meter"`
	Tempo []tempoDescriptor `json:"tempo"`
}

type meterDescriptor struct {
	Index       int `json:"index"`
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

type tempoDescriptor struct {
	Position int64   `json:"position"`
	BPM      float64 `json:"bpm"`
}

type trackDescriptor struct {
	Name          string           `json:"name"`
	DispOrder     int              `json:"dispOrder"`
	RenderEnabled *bool            `json:"renderEnabled"`
	MainGroup     *groupDescriptor `json:"mainGroup"`
	MainRef       *refDescriptor   `json:"mainRef"`
	Groups        []refDescriptor  `json:"groups"`
}

type groupDescriptor struct {
	UUID       string                `json:"uuid"`
	Name       string                `json:"name"`
	Notes      []noteDescriptor      `json:"notes"`
	Parameters *parametersDescriptor `json:"parameters"`
}

// refDescriptor places a group instance at a time offset with a pitch shift.
// GroupID is empty for inline main-group placements.
type refDescriptor struct {
	GroupID     string `json:"groupID"`
	BlickOffset int64  `json:"blickOffset"`
	PitchOffset int    `json:"pitchOffset"`
}

type noteDescriptor struct {
	Onset      int64           `json:"onset"`
	Duration   int64           `json:"duration"`
	Pitch      int             `json:"pitch"`
	Lyrics     string          `json:"lyrics"`
	Phonemes   string          `json:"phonemes"`
	Attributes *noteAttributes `json:"attributes"`
}

type noteAttributes struct {
	VibratoStart     *float64 `json:"tF0VbrStart"`
	VibratoLeft      *float64 `json:"tF0VbrLeft"`
	VibratoRight     *float64 `json:"tF0VbrRight"`
	VibratoDepth     *float64 `json:"dF0Vbr"`
	VibratoFrequency *float64 `json:"fF0Vbr"`
}

type parametersDescriptor struct {
	PitchDelta *parameterCurve `json:"pitchDelta"`
}

// parameterCurve holds a flat list of alternating (tick, value) pairs.
type parameterCurve struct {
	Mode   string    `json:"mode"`
	Points []float64 `json:"points"`
}
