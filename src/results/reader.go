// Package results reads experiment result files: one header line followed by comma separated rows
// whose first field is a row identifier and whose remaining fields are measurements.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/iafilius/CoevolutionPlot/src/logging"
)

// Delimiter separates fields in result files.
const Delimiter = ','

// Row is one data line. Values holds fields 1..n; field 0 stays text in ID.
type Row struct {
	Line   int
	ID     string
	Values []float64
}

// Table is a fully read result file.
type Table struct {
	Path   string
	Header []string
	Rows   []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Last returns the final data row.
func (t *Table) Last() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// ReadTable opens path, skips the header and parses every data row. The file is closed before returning.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, err
	}
	defer f.Close()
	return ParseTable(path, f)
}

// ParseTable parses result rows from r. path is only used in errors and logs.
func ParseTable(path string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	t := &Table{Path: path}
	header, err := cr.Read()
	if err == io.EOF {
		return t, nil
	}
	if err != nil {
		return nil, csvError(path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	t.Header = header

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(path, line, rec)
		if err != nil {
			return nil, err
		}
		if len(t.Rows) == 0 && len(rec) != len(header) {
			logging.Warnf("[results %s] header has %d columns but first data row has %d", path, len(header), len(rec))
		}
		t.Rows = append(t.Rows, row)
	}
	logging.Debugf("[results %s] rows=%d columns=%d", path, len(t.Rows), len(t.Header))
	return t, nil
}

func parseRow(path string, line int, rec []string) (Row, error) {
	row := Row{Line: line}
	if len(rec) == 0 {
		return row, nil
	}
	row.ID = strings.TrimSpace(rec[0])
	row.Values = make([]float64, 0, len(rec)-1)
	for i := 1; i < len(rec); i++ {
		raw := strings.TrimSpace(rec[i])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Row{}, &ParseError{Path: path, Line: line, Column: i, Value: rec[i], Reason: "not a number", Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Row{}, &ParseError{Path: path, Line: line, Column: i, Value: rec[i], Reason: "non-finite value"}
		}
		row.Values = append(row.Values, v)
	}
	return row, nil
}

func csvError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: path, Line: pe.Line, Column: -1, Reason: "malformed record", Err: err}
	}
	return fmt.Errorf("read %s: %w", path, err)
}
