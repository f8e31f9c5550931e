package svp

import (
	"log/slog"
	"sort"

	"github.com/GuglioIsStupid/OpenUtau/constants"
	"github.com/GuglioIsStupid/OpenUtau/model"
)

// buildTimeline derives the time signature and tempo lists from the
// authoritative descriptor, defaulting when the source has none.
func buildTimeline(p *model.Project, desc *projectDescriptor, logger *slog.Logger) {
	if desc.Time != nil && len(desc.Time.Meter) > 0 {
		for _, m := range desc.Time.Meter {
			p.TimeSignatures = append(p.TimeSignatures, model.TimeSignature{
				BarPosition: m.Index,
				BeatPerBar:  m.Numerator,
				BeatUnit:    m.Denominator,
			})
		}
		sort.SliceStable(p.TimeSignatures, func(i, j int) bool {
			return p.TimeSignatures[i].BarPosition < p.TimeSignatures[j].BarPosition
		})
		p.TimeSignatures[0].BarPosition = 0
	} else {
		logger.Warn("project has no meter changes, defaulting to 4/4")
		p.TimeSignatures = []model.TimeSignature{{
			BarPosition: 0,
			BeatPerBar:  constants.DefaultBeatPerBar,
			BeatUnit:    constants.DefaultBeatUnit,
		}}
	}

	if desc.Time != nil && len(desc.Time.Tempo) > 0 {
		for _, t := range desc.Time.Tempo {
			p.Tempos = append(p.Tempos, model.Tempo{
				Position: int(t.Position / constants.SvpTickRate),
				BPM:      t.BPM,
			})
		}
		sort.SliceStable(p.Tempos, func(i, j int) bool {
			return p.Tempos[i].Position < p.Tempos[j].Position
		})
		p.Tempos[0].Position = 0
	} else {
		logger.Warn("project has no tempo changes, defaulting to 120 BPM")
		p.Tempos = []model.Tempo{{Position: 0, BPM: constants.DefaultBPM}}
	}
}
