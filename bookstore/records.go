package bookstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// InputRecord is one data row of an input CSV file, keyed by its header.
type InputRecord struct {
	Line   int // 1-based data row number, header excluded
	header []string
	values map[string]string
}

// NewInputRecord pairs a row with its header. Short rows leave the trailing fields absent.
func NewInputRecord(line int, header []string, row []string) InputRecord {
	values := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(row) {
			values[h] = row[i]
		}
	}
	return InputRecord{Line: line, header: header, values: values}
}

// Lookup returns the value of field. An exact header match wins; otherwise headers
// are compared in snake case so that "user_id", "UserID" and "userID" are the same column.
func (r InputRecord) Lookup(field string) (string, bool) {
	if v, ok := r.values[field]; ok {
		return v, true
	}
	key := strcase.ToSnake(field)
	for _, h := range r.header {
		if strcase.ToSnake(h) == key {
			v, ok := r.values[h]
			return v, ok
		}
	}
	return "", false
}

func (r InputRecord) Get(field string) string {
	v, _ := r.Lookup(field)
	return v
}

// Missing returns the fields that are absent or empty.
func (r InputRecord) Missing(fields ...string) []string {
	var result []string
	for _, f := range fields {
		if v, ok := r.Lookup(f); !ok || v == "" {
			result = append(result, f)
		}
	}
	return result
}

// ReadInputCSV reads a header row followed by data rows.
func ReadInputCSV(r io.Reader) ([]InputRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var result []InputRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d %w", len(result)+1, err)
		}
		result = append(result, NewInputRecord(len(result)+1, header, row))
	}
	return result, nil
}

func ReadInputFile(name string) ([]InputRecord, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadInputCSV(f)
}

// WriteOutputCSV writes header then one row per record, in order.
func WriteOutputCSV(w io.Writer, header []string, records []OutputRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(r.Values()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteOutputFile(name string, header []string, records []OutputRecord) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteOutputCSV(f, header, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s %w", name, err)
	}
	return f.Close()
}

// statusCell renders a status code, leaving the cell empty when no response was received.
func statusCell(code int) string {
	if code == 0 {
		return ""
	}
	return strconv.Itoa(code)
}
