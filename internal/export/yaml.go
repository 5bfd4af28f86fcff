package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"trameview/internal/domain"
)

// YAMLExporter writes frames as a YAML sequence.
type YAMLExporter struct{}

func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

func (e *YAMLExporter) Format() domain.ExportFormat {
	return domain.ExportFormatYAML
}

func (e *YAMLExporter) Export(w io.Writer, frames []domain.Frame) error {
	if frames == nil {
		frames = []domain.Frame{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(frames); err != nil {
		return err
	}
	return enc.Close()
}
