// Package convert wraps the external PDF-to-spreadsheet conversion service
// used for the technician timesheet, whose layout defeats positional table
// detection.
package convert

import "context"

// Converter turns a PDF into an XLSX workbook at outPath. Implementations:
// APIConverter for the hosted conversion service, MockConverter for tests.
type Converter interface {
	ConvertToXLSX(ctx context.Context, pdfPath, outPath string) error
}
