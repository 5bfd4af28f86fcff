package export

import (
	"encoding/json"
	"io"

	"trameview/internal/domain"
)

// JSONExporter writes frames as an indented JSON array.
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Format() domain.ExportFormat {
	return domain.ExportFormatJSON
}

func (e *JSONExporter) Export(w io.Writer, frames []domain.Frame) error {
	if frames == nil {
		frames = []domain.Frame{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frames)
}
