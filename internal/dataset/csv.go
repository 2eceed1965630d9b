package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ColumnError reports a required column missing from the input header.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// RowError reports a value that could not be parsed.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d, column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

var requiredColumns = []string{
	ColumnFlightNumber,
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnBoosterCategory,
	ColumnClass,
}

// LoadCSV reads launch records from the CSV file at path.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadCSV parses launch records from r. Columns are located by header name,
// so their order does not matter and extra columns are ignored.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &ColumnError{Column: col}
		}
	}

	var records []LaunchRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return New(records)
}

func parseRow(row []string, index map[string]int, line int) (LaunchRecord, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	var rec LaunchRecord
	var err error

	rec.LaunchSite = field(ColumnLaunchSite)
	rec.BoosterCategory = field(ColumnBoosterCategory)

	if rec.FlightNumber, err = parseInt(field(ColumnFlightNumber)); err != nil {
		return rec, &RowError{Line: line, Column: ColumnFlightNumber, Value: field(ColumnFlightNumber), Err: err}
	}

	if rec.PayloadMassKg, err = strconv.ParseFloat(field(ColumnPayloadMass), 64); err != nil {
		return rec, &RowError{Line: line, Column: ColumnPayloadMass, Value: field(ColumnPayloadMass), Err: err}
	}

	class, err := parseInt(field(ColumnClass))
	if err == nil && class != Failure && class != Success {
		err = errors.New("class must be 0 or 1")
	}
	if err != nil {
		return rec, &RowError{Line: line, Column: ColumnClass, Value: field(ColumnClass), Err: err}
	}
	rec.Success = class

	return rec, nil
}

// parseInt accepts integral values written either as "7" or "7.0".
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer")
	}
	return int(f), nil
}
