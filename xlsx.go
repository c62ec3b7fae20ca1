package hallplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Measurement tables have the columns x, y, dx and dy in this order.
// A first row which does not start with a number is a header. Missing
// uncertainty columns are zero.
var rowHeader = []string{"x", "y", "dx", "dy"}

// RowError locates a bad cell in a measurement table. Line is 1-based.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("hallplot: line %d column %s: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// Spreadsheets with a Russian locale write decimal commas.
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

func parseRecords(records [][]string) ([]Row, error) {
	var rows []Row
	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		if i == 0 {
			if _, err := parseCell(rec[0]); err != nil {
				continue // header
			}
		}
		if len(rec) < 2 {
			return nil, &RowError{Line: i + 1, Column: "y", Err: io.ErrUnexpectedEOF}
		}
		var v [4]float64
		for c := 0; c < len(v) && c < len(rec); c++ {
			f, err := parseCell(rec[c])
			if err != nil {
				return nil, &RowError{Line: i + 1, Column: rowHeader[c], Err: err}
			}
			v[c] = f
		}
		rows = append(rows, Row{X: v[0], Y: v[1], DX: v[2], DY: v[3]})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// ReadRowsXLSX reads measurements from sheet of an Excel workbook. An
// empty sheet name selects the first sheet.
func ReadRowsXLSX(r io.Reader, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("hallplot: reading workbook: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("hallplot: workbook has no sheets")
		}
		sheet = sheets[0]
	}
	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("hallplot: sheet %q: %w", sheet, err)
	}
	return parseRecords(records)
}

// WriteRowsXLSX writes rows with a header line to a new workbook with
// a single sheet.
func WriteRowsXLSX(w io.Writer, sheet string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	header := make([]any, len(rowHeader))
	for i, h := range rowHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{r.X, r.Y, r.DX, r.DY}); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// ReadRowsCSV reads measurements from comma or semicolon separated
// text.
func ReadRowsCSV(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(strings.NewReader(string(data)))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	if strings.Contains(firstLine(string(data)), ";") {
		cr.Comma = ';'
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("hallplot: reading csv: %w", err)
	}
	return parseRecords(records)
}

// firstLine returns the first line which is neither blank nor a comment.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}
	return ""
}

// LoadRows reads a measurement table from an .xlsx or .csv file.
func LoadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadRowsXLSX(f, "")
	case ".csv", ".txt":
		return ReadRowsCSV(f)
	default:
		return nil, fmt.Errorf("hallplot: unsupported table format %q", ext)
	}
}

// SaveRows writes rows to an .xlsx file.
func SaveRows(path, sheet string, rows []Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteRowsXLSX(f, sheet, rows)
}
