package svp

import (
	"testing"

	"github.com/GuglioIsStupid/OpenUtau/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildTimelineSortsMeters(t *testing.T) {
	p := model.New()
	desc := &projectDescriptor{Time: &timeDescriptor{
		Meter: []meterDescriptor{
			{Index: 2, Numerator: 3, Denominator: 4},
			{Index: 0, Numerator: 4, Denominator: 4},
		},
	}}
	buildTimeline(p, desc, discard())

	assert := assert.New(t)
	assert.Equal([]model.TimeSignature{
		{BarPosition: 0, BeatPerBar: 4, BeatUnit: 4},
		{BarPosition: 2, BeatPerBar: 3, BeatUnit: 4},
	}, p.TimeSignatures)
}

func TestBuildTimelineForcesFirstMeterToBarZero(t *testing.T) {
	p := model.New()
	desc := &projectDescriptor{Time: &timeDescriptor{
		Meter: []meterDescriptor{{Index: 3, Numerator: 6, Denominator: 8}},
	}}
	buildTimeline(p, desc, discard())

	assert.Equal(t, []model.TimeSignature{{BarPosition: 0, BeatPerBar: 6, BeatUnit: 8}}, p.TimeSignatures)
}

func TestBuildTimelineConvertsAndSortsTempos(t *testing.T) {
	p := model.New()
	desc := &projectDescriptor{Time: &timeDescriptor{
		Tempo: []tempoDescriptor{
			{Position: 2940000, BPM: 90},
			{Position: 0, BPM: 120},
		},
	}}
	buildTimeline(p, desc, discard())

	assert := assert.New(t)
	assert.Equal([]model.Tempo{
		{Position: 0, BPM: 120},
		{Position: 2, BPM: 90},
	}, p.Tempos)
}

func TestBuildTimelineDefaults(t *testing.T) {
	p := model.New()
	buildTimeline(p, &projectDescriptor{}, discard())

	assert := assert.New(t)
	assert.Equal([]model.TimeSignature{{BarPosition: 0, BeatPerBar: 4, BeatUnit: 4}}, p.TimeSignatures)
	assert.Equal([]model.Tempo{{Position: 0, BPM: 120}}, p.Tempos)
}
