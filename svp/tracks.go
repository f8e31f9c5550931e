package svp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/GuglioIsStupid/OpenUtau/constants"
	"github.com/GuglioIsStupid/OpenUtau/model"
)

// Lyric marker meaning "continue the previous syllable".
const lyricContinuation = "+"

// Every imported note gets this velocity; the source schema has no per-note
// velocity field to vary it.
const defaultNoteVelocity = 100

// Placeholder name for parts built from unresolvable group references.
const placeholderPartName = "Part"

// buildTracks creates destination tracks for every track descriptor, then in
// a second pass places voice parts by resolving inline and library group
// references.
func buildTracks(p *model.Project, desc *projectDescriptor, logger *slog.Logger) {
	library := make(map[string]*groupDescriptor, len(desc.Library))
	for i := range desc.Library {
		g := &desc.Library[i]
		library[g.UUID] = g
	}

	for i := range desc.Tracks {
		td := &desc.Tracks[i]
		name := td.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Track %d", i+1)
		}
		muted := td.RenderEnabled != nil && !*td.RenderEnabled
		p.Tracks = append(p.Tracks, &model.Track{Name: name, Muted: muted, TrackNo: i})
	}

	for i := range desc.Tracks {
		td := &desc.Tracks[i]
		trackNo := resolveTrackNo(p, td.DispOrder)
		if td.MainGroup != nil && td.MainRef != nil {
			addPart(p, trackNo, td.MainGroup, td.MainRef, logger)
		}
		for j := range td.Groups {
			ref := &td.Groups[j]
			group, ok := library[ref.GroupID]
			if !ok {
				logger.Debug("library group not found, placing empty part",
					"groupID", ref.GroupID)
				group = &groupDescriptor{Name: placeholderPartName}
			}
			addPart(p, trackNo, group, ref, logger)
		}
	}
}

// resolveTrackNo maps a display-order index onto an existing track,
// appending-like when negative and clamping when out of range. The empty
// project branch cannot be reached once track creation has run; kept as a
// guard.
func resolveTrackNo(p *model.Project, dispOrder int) int {
	trackNo := dispOrder
	if trackNo < 0 {
		trackNo = len(p.Tracks)
	}
	if trackNo >= len(p.Tracks) {
		if len(p.Tracks) == 0 {
			p.Tracks = append(p.Tracks, &model.Track{Name: "Track 1"})
		}
		trackNo = 0
	}
	return trackNo
}

// addPart builds one voice part from a (group, placement reference) pair and
// appends it to the project.
func addPart(p *model.Project, trackNo int, group *groupDescriptor, ref *refDescriptor, logger *slog.Logger) {
	part := &model.VoicePart{TrackNo: trackNo, Name: group.Name}
	if strings.TrimSpace(part.Name) == "" {
		part.Name = placeholderPartName
	}

	if len(group.Notes) == 0 {
		part.Position = int(ref.BlickOffset / constants.SvpTickRate)
	} else {
		first := group.Notes[0].Onset + ref.BlickOffset
		last := first
		for i := range group.Notes {
			onset := group.Notes[i].Onset + ref.BlickOffset
			if onset < first {
				first = onset
			}
			if end := onset + group.Notes[i].Duration; end > last {
				last = end
			}
		}
		part.Position = int(first / constants.SvpTickRate)
		part.Duration = int(last/constants.SvpTickRate) - part.Position
		for i := range group.Notes {
			part.Notes = append(part.Notes, convertNote(&group.Notes[i], ref, part.Position))
		}
	}

	reconstructPitchCurve(p, part, group, ref, logger)
	p.Parts = append(p.Parts, part)
}

// convertNote maps one note descriptor into the destination note, converting
// ticks and expressing the position relative to the part start.
func convertNote(nd *noteDescriptor, ref *refDescriptor, partPos int) *model.Note {
	note := &model.Note{
		Position: int((nd.Onset+ref.BlickOffset)/constants.SvpTickRate) - partPos,
		Duration: int(nd.Duration / constants.SvpTickRate),
		Tone:     nd.Pitch + ref.PitchOffset,
		Lyric:    nd.Lyrics,
	}
	if strings.TrimSpace(note.Lyric) == "" || note.Lyric == "-" {
		note.Lyric = lyricContinuation
	}
	if nd.Phonemes != "" {
		note.Phonemes = nd.Phonemes
	}
	note.SetExpression(model.VelocityAbbr, defaultNoteVelocity)

	if a := nd.Attributes; a != nil {
		if a.VibratoStart != nil {
			note.Vibrato.In = *a.VibratoStart
		}
		if a.VibratoLeft != nil {
			note.Vibrato.Left = *a.VibratoLeft
		}
		if a.VibratoRight != nil {
			note.Vibrato.Right = *a.VibratoRight
		}
		if a.VibratoDepth != nil {
			note.Vibrato.Depth = *a.VibratoDepth
		}
		if a.VibratoFrequency != nil {
			note.Vibrato.Period = *a.VibratoFrequency
		}
	}
	return note
}
