package svp

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"
)

// BlobInfo describes one candidate payload of a project container.
type BlobInfo struct {
	Index   int
	Bytes   int
	Runes   int
	Version int64
	Decodes bool
}

// Inspect splits the container at path and reports, per candidate payload,
// its size and whether it decodes, without building a project.
func Inspect(path string) ([]BlobInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("svp: reading %s: %w", path, err)
	}
	blobs := splitPayloads(string(data))
	if len(blobs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPayload, path)
	}

	res := make([]BlobInfo, 0, len(blobs))
	for i, blob := range blobs {
		info := BlobInfo{Index: i, Bytes: len(blob), Runes: utf8.RuneCountInString(blob)}
		var desc projectDescriptor
		if err := json.Unmarshal([]byte(blob), &desc); err == nil {
			info.Decodes = true
			info.Version = desc.Version
		}
		res = append(res, info)
	}
	return res, nil
}
