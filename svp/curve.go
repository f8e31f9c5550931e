package svp

import (
	"log/slog"
	"math"

	"github.com/GuglioIsStupid/OpenUtau/constants"
	"github.com/GuglioIsStupid/OpenUtau/model"
)

// reconstructPitchCurve rebuilds the pitch-deviation curve of one group from
// its sparse (tick, value) point list and attaches it to part. A failure
// here only loses this group's curve, never the import; a panic while
// walking a malformed point list is recovered and treated the same way.
func reconstructPitchCurve(p *model.Project, part *model.VoicePart, group *groupDescriptor, ref *refDescriptor, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("skipping pitch curve", "group", group.Name, "cause", r)
		}
	}()

	if group.Parameters == nil || group.Parameters.PitchDelta == nil {
		return
	}
	points := group.Parameters.PitchDelta.Points
	if len(points) < 2 {
		return
	}
	if _, ok := p.Expressions[model.PitchDeviationAbbr]; !ok {
		logger.Debug("pitch deviation expression not registered, skipping curve",
			"group", group.Name)
		return
	}

	curve := &model.Curve{Abbr: model.PitchDeviationAbbr}
	lastX, lastY := 0, 0
	for i := 0; i+1 < len(points); i += 2 {
		tick := int64(points[i]) + ref.BlickOffset
		x := int(tick/constants.SvpTickRate) - part.Position
		if x < 0 {
			x = 0
		}
		y := int(math.Round(points[i+1]))
		curve.Set(x, y, lastX, lastY)
		lastX, lastY = x, y
	}
	// Hold the final value to the end of the part so the curve spans it.
	curve.Set(part.Duration, lastY, 0, 0)

	part.Curves = append(part.Curves, curve)
}
