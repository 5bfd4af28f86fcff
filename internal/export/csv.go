package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"trameview/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer wraps csv.Writer for exporting frames as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteFrames converts frames to CSV rows and writes them, numbered from 0.
func (w *Writer) WriteFrames(frames []domain.Frame) error {
	for i := range frames {
		if err := w.csv.Write(frameToRow(i, &frames[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func frameToRow(index int, f *domain.Frame) []string {
	values := record(index, f)
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprint(v)
	}
	return row
}

// CSVExporter writes frames as a BOM-prefixed CSV document.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Format() domain.ExportFormat {
	return domain.ExportFormatCSV
}

func (e *CSVExporter) Export(w io.Writer, frames []domain.Frame) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteFrames(frames); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
