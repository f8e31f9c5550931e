// Package svp imports Synthesizer V Studio project files: text containers
// holding one or more NUL-terminated JSON payloads. Import is best-effort;
// a corrupt payload, group curve or note field never aborts the whole file.
package svp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/GuglioIsStupid/OpenUtau/model"
)

const terminator = "\x00"

var (
	// ErrNoPayload means the file contained no non-blank payloads at all.
	ErrNoPayload = errors.New("svp: no payload")
	// ErrNoParsableProject means every payload failed to decode.
	ErrNoParsableProject = errors.New("svp: no parsable project")
)

// Load reads the project file at path and builds a normalized project from
// its authoritative payload. logger may be nil.
func Load(path string, logger *slog.Logger) (*model.Project, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("svp: reading %s: %w", path, err)
	}

	blobs := splitPayloads(string(data))
	if len(blobs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPayload, path)
	}

	descs := decodePayloads(blobs, logger)
	if len(descs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoParsableProject, path)
	}

	main := selectAuthoritative(descs)
	logger.Info("importing project",
		"path", path, "payloads", len(blobs), "decoded", len(descs), "version", main.Version)

	project := model.New()
	project.RegisterExpression(model.ExpressionDescriptor{
		Name:    "opening",
		Abbr:    model.OpeningAbbr,
		Type:    model.Numerical,
		Min:     0,
		Max:     100,
		Default: 100,
	})
	project.Name = projectTitle(blobs, path, logger)

	buildTimeline(project, main, logger)
	buildTracks(project, main, logger)

	project.AfterLoad()
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("svp: %s: %w", path, err)
	}
	return project, nil
}

// splitPayloads cuts the container on terminator bytes and drops blank
// pieces. A file may carry several serialized documents.
func splitPayloads(text string) []string {
	var res []string
	for _, piece := range strings.Split(text, terminator) {
		piece = strings.Trim(piece, terminator)
		if strings.TrimSpace(piece) == "" {
			continue
		}
		res = append(res, piece)
	}
	return res
}

// decodePayloads decodes every candidate independently; a payload that fails
// is skipped so one corrupt document cannot poison the rest.
func decodePayloads(blobs []string, logger *slog.Logger) []*projectDescriptor {
	var res []*projectDescriptor
	for i, blob := range blobs {
		var desc projectDescriptor
		if err := json.Unmarshal([]byte(blob), &desc); err != nil {
			logger.Debug("discarding unparsable payload", "index", i, "error", err)
			continue
		}
		res = append(res, &desc)
	}
	return res
}

// selectAuthoritative picks the descriptor with the highest declared schema
// version; a missing version ranks as 0 and ties keep the first one seen.
func selectAuthoritative(descs []*projectDescriptor) *projectDescriptor {
	best := descs[0]
	for _, d := range descs[1:] {
		if d.Version > best.Version {
			best = d
		}
	}
	return best
}
