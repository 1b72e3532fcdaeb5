// Package dataset loads catalog tables (e.g. netflix_titles.csv) into records.
package dataset

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/storage"
)

var ErrColumnMissing = errors.New("required column missing")

// Columns names the source columns to read. Attribute may be empty.
type Columns struct {
	Entity    string
	Attribute string
}

// naValues are cell values read as null, matching the default missing-value
// markers of common dataframe readers.
var naValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsNull reports whether a raw cell value counts as missing.
func IsNull(v string) bool {
	_, ok := naValues[v]
	return ok
}

// Load reads a CSV file through s and parses its records.
func Load(s *storage.Storage, path string, cols Columns) ([]models.Record, error) {
	data, err := s.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	records, err := Parse(data, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return records, nil
}

// Read parses CSV from r. See Parse.
func Read(r io.Reader, cols Columns) ([]models.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data, cols)
}

// Parse reads CSV with a header row. The entity column must exist; a missing
// attribute column leaves every attribute null. Short rows read as null cells.
//
// A quote inside an unquoted cell (Dwayne "The Rock" Johnson) is kept as a
// literal character. A quoted cell that is never closed is still an error.
func Parse(data []byte, cols Columns) ([]models.Record, error) {
	records, err := parse(data, cols, false)
	if errors.Is(err, csv.ErrBareQuote) {
		return parse(data, cols, true)
	}
	return records, err
}

func parse(data []byte, cols Columns, lazyQuotes bool) ([]models.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = lazyQuotes

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %q (no header row)", ErrColumnMissing, cols.Entity)
	}
	if err != nil {
		return nil, fmt.Errorf("malformed header: %w", err)
	}

	entityIdx := columnIndex(header, cols.Entity)
	if entityIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnMissing, cols.Entity)
	}
	attrIdx := -1
	if cols.Attribute != "" {
		attrIdx = columnIndex(header, cols.Attribute)
	}

	var records []models.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}

		records = append(records, models.Record{
			Entity:    cell(row, entityIdx),
			Attribute: cell(row, attrIdx),
		})
	}

	return records, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if h == name {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) sql.NullString {
	if idx < 0 || idx >= len(row) || IsNull(row[idx]) {
		return sql.NullString{}
	}
	return sql.NullString{String: row[idx], Valid: true}
}
