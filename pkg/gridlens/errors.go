package gridlens

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the input workbook or CSV file does not exist.
// Fatal to the session: there is no data to show.
var ErrSourceNotFound = errors.New("source not found")

// ErrSourceFormat indicates the input content could not be parsed as a grid.
// The CSV loader retries once with an alternate delimiter before surfacing it.
var ErrSourceFormat = errors.New("unparsable source format")

// ErrSheetNotFound indicates a named sheet expected by a view is missing.
// Local to that view; other sheets stay usable.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrStructureUnresolved indicates no header row could be detected. Only
// raised in strict mode; the default path degrades to synthetic column
// labels instead.
var ErrStructureUnresolved = errors.New("no header row detected")

// AnalysisError wraps a failure with the sheet and stage it occurred in.
type AnalysisError struct {
	Sheet string
	Stage string // "load", "detect", "normalize", "aggregate"
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(sheet, stage string, err error) *AnalysisError {
	return &AnalysisError{Sheet: sheet, Stage: stage, Err: err}
}
