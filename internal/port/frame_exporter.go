package port

import (
	"io"

	"trameview/internal/domain"
)

// FrameExporter writes a frame sequence in one output format.
type FrameExporter interface {
	Export(w io.Writer, frames []domain.Frame) error
	Format() domain.ExportFormat
}
