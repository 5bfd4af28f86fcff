package export

import (
	"fmt"

	"trameview/internal/domain"
	"trameview/internal/port"
)

// formats maps each export format to its exporter constructor.
var formats = map[domain.ExportFormat]func() port.FrameExporter{
	domain.ExportFormatCSV:  func() port.FrameExporter { return NewCSVExporter() },
	domain.ExportFormatXLSX: func() port.FrameExporter { return NewXLSXExporter() },
	domain.ExportFormatJSON: func() port.FrameExporter { return NewJSONExporter() },
	domain.ExportFormatYAML: func() port.FrameExporter { return NewYAMLExporter() },
}

// New creates the exporter registered for format.
func New(format domain.ExportFormat) (port.FrameExporter, error) {
	factory, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFormat, format)
	}
	return factory(), nil
}
