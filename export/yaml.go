package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dasdy/termslides/model"
	"gopkg.in/yaml.v3"
)

type specDocument struct {
	Slides []model.SlideSpec `yaml:"slides"`
}

// WriteSpecsYAML writes the parsed slides as a YAML document. Coordinates and
// corners are written in their source notation.
func WriteSpecsYAML(w io.Writer, specs []model.SlideSpec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(specDocument{Slides: specs}); err != nil {
		return fmt.Errorf("could not encode slides: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not finish yaml document: %w", err)
	}

	return nil
}

// WriteSpecsYAMLFile encodes specs before touching path.
func WriteSpecsYAMLFile(path string, specs []model.SlideSpec) error {
	var buf bytes.Buffer
	if err := WriteSpecsYAML(&buf, specs); err != nil {
		return err
	}

	return writeFile(path, buf.Bytes())
}
