// Package ustx writes projects in the editor's native YAML format.
package ustx

import (
	"fmt"
	"io"
	"os"

	"github.com/GuglioIsStupid/OpenUtau/model"
	"gopkg.in/yaml.v3"
)

// Version is the document format version stamped on every written file.
const Version = "0.6"

type document struct {
	UstxVersion string        `yaml:"ustx_version"`
	Project     model.Project `yaml:",inline"`
}

func Write(w io.Writer, p *model.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{UstxVersion: Version, Project: *p}); err != nil {
		return fmt.Errorf("ustx: encoding project %q: %w", p.Name, err)
	}
	return enc.Close()
}

func WriteFile(path string, p *model.Project) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ustx: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, p); err != nil {
		return err
	}
	return f.Close()
}
