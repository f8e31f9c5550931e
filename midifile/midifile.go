// Package midifile renders a project to a Standard MIDI File. The model's
// tick resolution is used as the SMF resolution, so positions carry over
// unchanged.
package midifile

import (
	"fmt"
	"os"
	"sort"

	"github.com/GuglioIsStupid/OpenUtau/constants"
	"github.com/GuglioIsStupid/OpenUtau/model"
	"github.com/GuglioIsStupid/OpenUtau/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type event struct {
	tick int
	// order breaks ties at equal ticks: note offs first, then meta, then ons
	order int
	msg   smf.Message
}

const (
	orderNoteOff = iota
	orderMeta
	orderNoteOn
)

// Build renders the project as a format-1 SMF: a conductor track with the
// tempo map and meters, then one track per project track.
func Build(p *model.Project) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.Resolution)

	res.Tracks = append(res.Tracks, buildConductor(p))
	for _, track := range p.Tracks {
		res.Tracks = append(res.Tracks, buildTrack(p, track))
	}
	return &res
}

// WriteFile renders the project and writes it to path.
func WriteFile(path string, p *model.Project) error {
	s := Build(p)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("midifile: creating %s: %w", path, err)
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("midifile: writing %s: %w", path, err)
	}
	return f.Close()
}

func buildConductor(p *model.Project) smf.Track {
	var events []event
	events = append(events, event{tick: 0, order: orderMeta, msg: smf.MetaTrackSequenceName(p.Name)})

	// Meter bar positions resolve to ticks through the meter list itself.
	barTick := 0
	for i, ts := range p.TimeSignatures {
		if i > 0 {
			prev := p.TimeSignatures[i-1]
			ticksPerBar := prev.BeatPerBar * constants.Resolution * 4 / prev.BeatUnit
			barTick += (ts.BarPosition - prev.BarPosition) * ticksPerBar
		}
		events = append(events, event{
			tick:  barTick,
			order: orderMeta,
			msg:   smf.MetaMeter(uint8(ts.BeatPerBar), uint8(ts.BeatUnit)),
		})
	}
	for _, t := range p.Tempos {
		events = append(events, event{tick: t.Position, order: orderMeta, msg: smf.MetaTempo(t.BPM)})
	}

	return assemble(events)
}

func buildTrack(p *model.Project, track *model.Track) smf.Track {
	events := []event{{tick: 0, order: orderMeta, msg: smf.MetaTrackSequenceName(track.Name)}}

	for _, part := range p.TrackParts(track.TrackNo) {
		for _, note := range part.Notes {
			on := part.Position + note.Position
			off := on + note.Duration
			key := uint8(util.Clamp(note.Tone, 0, 127))
			vel := velocityOf(note)
			events = append(events,
				event{tick: on, order: orderMeta, msg: smf.MetaLyric(note.Lyric)},
				event{tick: on, order: orderNoteOn, msg: smf.Message(midi.NoteOn(0, key, vel))},
				event{tick: off, order: orderNoteOff, msg: smf.Message(midi.NoteOff(0, key))},
			)
		}
	}

	return assemble(events)
}

func velocityOf(note *model.Note) uint8 {
	v, ok := note.Expression(model.VelocityAbbr)
	if !ok {
		v = 100
	}
	// Expression range 0..200 maps onto the MIDI 0..127 scale.
	return uint8(util.Clamp(int(v*127/200), 1, 127))
}

// assemble sorts events and converts absolute ticks to deltas.
func assemble(events []event) smf.Track {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].order < events[j].order
	})

	var tr smf.Track
	prev := 0
	for _, ev := range events {
		tr.Add(uint32(ev.tick-prev), ev.msg)
		prev = ev.tick
	}
	tr.Close(0)
	return tr
}
