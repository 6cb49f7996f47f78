package crawler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"mbtatimes/internal/models"

	"github.com/gocarina/gocsv"
)

// Parser turns departure board CSV into raw records.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseDepartures reads comma separated text whose first row names the
// columns. Keys and values are returned untouched. Stray quotes inside
// unquoted fields are kept as text. When several header names trim to the
// same column name, the rightmost column is kept, matching how a repeated
// header overwrites earlier ones.
func (p *Parser) ParseDepartures(content string) ([]models.RawRecord, error) {
	decoder := gocsv.NewSimpleDecoderFromCSVReader(newDeparturesReader(strings.NewReader(content)))

	rows, err := decoder.GetCSVRows()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse departures CSV: %w", err)
	}

	if len(rows) == 0 {
		return []models.RawRecord{}, nil
	}

	header := rows[0]
	columns := shadowingColumns(header)

	records := make([]models.RawRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := make(models.RawRecord, len(columns))
		for _, i := range columns {
			record[header[i]] = row[i]
		}

		records = append(records, record)
	}

	return records, nil
}

func newDeparturesReader(in io.Reader) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.LazyQuotes = true

	return r
}

// shadowingColumns returns the indexes of the header cells that survive once
// names are trimmed, keeping the last occurrence of each name.
func shadowingColumns(header []string) []int {
	last := make(map[string]int, len(header))
	for i, name := range header {
		last[strings.TrimSpace(name)] = i
	}

	columns := make([]int, 0, len(last))

	for i, name := range header {
		if last[strings.TrimSpace(name)] == i {
			columns = append(columns, i)
		}
	}

	return columns
}
