package midifile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/GuglioIsStupid/OpenUtau/model"
)

func twoNoteProject() *model.Project {
	p := model.New()
	p.Name = "Two Notes"
	p.Tracks = []*model.Track{{Name: "Vocal"}}
	p.Parts = []*model.VoicePart{{
		Name: "main",
		Notes: []*model.Note{
			{Position: 0, Duration: 480, Tone: 60, Lyric: "la"},
			{Position: 480, Duration: 480, Tone: 62, Lyric: "la"},
		},
		Duration: 960,
	}}
	p.AfterLoad()
	return p
}

func TestBuildLayout(t *testing.T) {
	s := Build(twoNoteProject())

	assert := assert.New(t)
	assert.Equal(smf.MetricTicks(480), s.TimeFormat)
	// conductor plus one track per project track
	assert.Len(s.Tracks, 2)
}

func TestBuildNoteTicks(t *testing.T) {
	s := Build(twoNoteProject())

	type noteEvent struct {
		tick uint64
		on   bool
		key  uint8
	}
	var got []noteEvent
	var absTicks uint64
	for _, ev := range s.Tracks[1] {
		absTicks += uint64(ev.Delta)
		var ch, key, vel uint8
		switch {
		case ev.Message.GetNoteOn(&ch, &key, &vel):
			got = append(got, noteEvent{tick: absTicks, on: true, key: key})
		case ev.Message.GetNoteOff(&ch, &key, &vel):
			got = append(got, noteEvent{tick: absTicks, on: false, key: key})
		}
	}

	assert := assert.New(t)
	assert.Equal([]noteEvent{
		{tick: 0, on: true, key: 60},
		{tick: 480, on: false, key: 60},
		{tick: 480, on: true, key: 62},
		{tick: 960, on: false, key: 62},
	}, got)
}

func TestBuildConductorCarriesTimeline(t *testing.T) {
	p := twoNoteProject()
	p.Tempos = []model.Tempo{{Position: 0, BPM: 120}, {Position: 960, BPM: 90}}
	s := Build(p)

	var tempos []float64
	var meters int
	for _, ev := range s.Tracks[0] {
		var bpm float64
		var num, denom uint8
		if ev.Message.GetMetaTempo(&bpm) {
			tempos = append(tempos, bpm)
		}
		if ev.Message.GetMetaMeter(&num, &denom) {
			meters++
		}
	}

	assert := assert.New(t)
	assert.Equal([]float64{120, 90}, tempos)
	assert.Equal(1, meters)
}

func TestVelocityMapping(t *testing.T) {
	note := &model.Note{}
	note.SetExpression(model.VelocityAbbr, 100)
	assert.Equal(t, uint8(63), velocityOf(note))

	loud := &model.Note{}
	loud.SetExpression(model.VelocityAbbr, 200)
	assert.Equal(t, uint8(127), velocityOf(loud))

	silent := &model.Note{}
	silent.SetExpression(model.VelocityAbbr, 0)
	assert.Equal(t, uint8(1), velocityOf(silent))
}
