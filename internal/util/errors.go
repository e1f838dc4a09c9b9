package util

import "errors"

var (
	ErrNoTables      = errors.New("no tables detected in PDF")
	ErrMissingColumn = errors.New("required column missing from source table")

	ErrConversionFailed = errors.New("document conversion failed")
)
