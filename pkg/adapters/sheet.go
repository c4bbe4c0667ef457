package adapters

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

var (
	zipMagic = []byte("PK\x03\x04")
	utf8BOM  = []byte("\xef\xbb\xbf")
)

// row is one spreadsheet data row keyed by trimmed header name.
type row map[string]string

// first returns the first non-empty value among keys.
func (r row) first(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(r[key]); value != "" {
			return value
		}
	}
	return ""
}

// firstOr is first with a fallback.
func (r row) firstOr(fallback string, keys ...string) string {
	if value := r.first(keys...); value != "" {
		return value
	}
	return fallback
}

func isWorkbook(src sources.Source, raw []byte) bool {
	switch extOf(src) {
	case ".xlsx", ".xlsm":
		return true
	}
	return bytes.HasPrefix(raw, zipMagic)
}

func isCSV(src sources.Source, raw []byte) bool {
	if bytes.HasPrefix(raw, zipMagic) {
		return false
	}
	switch extOf(src) {
	case ".csv":
		return true
	case "", ".txt":
		line := raw
		if i := bytes.IndexByte(raw, '\n'); i >= 0 {
			line = raw[:i]
		}
		trimmed := bytes.TrimSpace(line)
		return len(trimmed) > 0 && trimmed[0] != '<' && trimmed[0] != '{' && trimmed[0] != '[' &&
			bytes.IndexByte(trimmed, ',') >= 0
	}
	return false
}

func isSpreadsheet(src sources.Source, raw []byte) bool {
	return isWorkbook(src, raw) || isCSV(src, raw)
}

// readSheet returns the data rows of the first sheet of a workbook, or of a
// CSV document. Blank rows are skipped.
func readSheet(doc sources.Document) ([]row, error) {
	raw := doc.Raw()
	var (
		records [][]string
		err     error
	)
	if isWorkbook(doc.Source(), raw) {
		records, err = readWorkbook(raw)
	} else {
		records, err = readCSV(raw)
	}
	if err != nil {
		return nil, err
	}
	return toRows(records), nil
}

func readWorkbook(raw []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	records, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return records, nil
}

func readCSV(raw []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func toRows(records [][]string) []row {
	if len(records) == 0 {
		return nil
	}
	header := make([]string, len(records[0]))
	for i, key := range records[0] {
		header[i] = strings.TrimSpace(key)
	}

	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		r := make(row, len(header))
		blank := true
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
			r[header[i]] = cell
		}
		if blank {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

// coerce turns a cell into a number or boolean when it reads as one, and
// nil when empty.
func coerce(cell string) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	switch strings.ToLower(cell) {
	case "true":
		return true
	case "false":
		return false
	}
	if number, err := cast.ToFloat64E(cell); err == nil {
		return number
	}
	return cell
}
