package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVParser parses a flat ruler table. Rows are grouped into dynasties by
// first occurrence of the dynasty column; a dynasty's era comes from its first
// row and its span from the earliest reign start and latest reign end.
type CSVParser struct{}

// Parse reads CSV from the reader and returns the parsed catalog.
// Expected columns: id, name, dynasty, era, religion, reign_start, reign_end, notes
func (p *CSVParser) Parse(r io.Reader) (*RawCatalog, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	rulers, err := p.readRecords(reader, colIndex)
	if err != nil {
		return nil, err
	}

	return &RawCatalog{Dynasties: groupByDynasty(rulers)}, nil
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	requiredCols := []string{"id", "name", "dynasty", "reign_start", "reign_end"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRulers.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRuler, error) {
	var rulers []RawRuler

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		// Quoted fields may span lines, so take the record's first line.
		lineNum, _ := reader.FieldPos(0)
		ruler, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		rulers = append(rulers, ruler)
	}

	return rulers, nil
}

// parseRecord converts a CSV record to a RawRuler.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawRuler, error) {
	ruler := RawRuler{
		ID:       getColumn(record, colIndex, "id"),
		Name:     getColumn(record, colIndex, "name"),
		Dynasty:  getColumn(record, colIndex, "dynasty"),
		Era:      getColumn(record, colIndex, "era"),
		Religion: getColumn(record, colIndex, "religion"),
		Notes:    getColumn(record, colIndex, "notes"),
		LineNum:  lineNum,
	}

	var err error
	if ruler.ReignStart, err = parseYear(record, colIndex, "reign_start", lineNum); err != nil {
		return RawRuler{}, err
	}
	if ruler.ReignEnd, err = parseYear(record, colIndex, "reign_end", lineNum); err != nil {
		return RawRuler{}, err
	}

	return ruler, nil
}

func parseYear(record []string, colIndex map[string]int, col string, lineNum int) (int, error) {
	s := strings.TrimSpace(getColumn(record, colIndex, col))
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s value %q: %w", lineNum, col, s, err)
	}
	return year, nil
}

// groupByDynasty builds dynasties in first-occurrence order.
func groupByDynasty(rulers []RawRuler) []RawDynasty {
	var dynasties []RawDynasty
	index := make(map[string]int)

	for _, r := range rulers {
		i, ok := index[r.Dynasty]
		if !ok {
			i = len(dynasties)
			index[r.Dynasty] = i
			dynasties = append(dynasties, RawDynasty{
				Name:      r.Dynasty,
				Era:       r.Era,
				StartYear: r.ReignStart,
				EndYear:   r.ReignEnd,
				LineNum:   r.LineNum,
			})
		}
		d := &dynasties[i]
		d.StartYear = min(d.StartYear, r.ReignStart)
		d.EndYear = max(d.EndYear, r.ReignEnd)
		d.Rulers = append(d.Rulers, r)
	}

	return dynasties
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
