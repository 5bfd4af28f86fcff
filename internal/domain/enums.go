package domain

// ExportFormat names an output encoding for decoded frames.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

// ExportExtensions maps ExportFormat to its file extension (without dot).
var ExportExtensions = map[ExportFormat]string{
	ExportFormatCSV:  "csv",
	ExportFormatXLSX: "xlsx",
	ExportFormatJSON: "json",
	ExportFormatYAML: "yaml",
}
