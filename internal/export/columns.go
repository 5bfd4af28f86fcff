package export

import (
	"time"

	"trameview/internal/domain"
	"trameview/internal/viewer"
)

// columns defines the header row shared by the tabular formats.
var columns = []string{
	"Index",
	"FN",
	"Logical Canal",
	"Sub Type",
	"Length",
	"Payload Length",
	"Payload (hex)",
	"Date",
	"Freq",
	"Localisation",
}

// record converts a frame to one row of cell values, matching columns.
// Absent optional values become empty cells.
func record(index int, f *domain.Frame) []any {
	return []any{
		index,
		optional(f.FnID),
		f.LogicalCanal,
		f.SubType,
		f.Length,
		len(f.ContenuSegment),
		viewer.FormatPayload(f.ContenuSegment),
		f.Date.Format(time.RFC3339Nano),
		f.Freq,
		optional(f.Localisation),
	}
}

func optional(v *int32) any {
	if v == nil {
		return ""
	}
	return *v
}
