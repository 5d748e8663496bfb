package results

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound reports a series file missing from the data directory.
	ErrFileNotFound = errors.New("result file not found")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")
	// ErrEmptyInput reports a result file without data rows.
	ErrEmptyInput = errors.New("no data rows")
	// ErrComputation reports a statistic that is undefined for the given row, e.g. a mean of nothing.
	ErrComputation = errors.New("computation error")
)

// ParseError describes a field or record that could not be turned into numbers.
// Line is 1-based; Column is the 0-based field index (-1 when the whole record is at fault).
type ParseError struct {
	Path   string
	Line   int
	Column int
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s:%d", e.Path, e.Line)
	if e.Column >= 0 {
		msg += fmt.Sprintf(" field %d", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
