package convert

import (
	"context"
	"fmt"
	"io"
	"os"
)

// MockConverter satisfies Converter for tests: it copies a prepared workbook
// into place, or fails with Err.
type MockConverter struct {
	WorkbookPath string
	Err          error
}

func (m *MockConverter) ConvertToXLSX(_ context.Context, _ string, outPath string) error {
	if m.Err != nil {
		return m.Err
	}
	src, err := os.Open(m.WorkbookPath)
	if err != nil {
		return fmt.Errorf("open mock workbook: %w", err)
	}
	defer src.Close()
	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create mock output: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy mock workbook: %w", err)
	}
	return nil
}
