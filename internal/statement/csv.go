package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/fileutils"

	"github.com/gocarina/gocsv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// accountCSVRow is the output row for account statements.
type accountCSVRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// creditCardCSVRow is the output row for credit card statements.
type creditCardCSVRow struct {
	TransactionDate string `csv:"TransactionDate"`
	Description     string `csv:"Description"`
	Amount          string `csv:"Amount"`
}

// newStatementReader tolerates bare quotes inside unquoted fields and rows that
// stop short of the header.
func newStatementReader(in io.Reader) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r
}

// ReadTable reads a comma separated statement with a header row.
// Cells missing from the end of a short row read as empty. A row with more
// fields than the header, or any failure to open or parse the file, is
// returned as *apperror.InputReadError.
func ReadTable(filePath string) (*Table, error) {
	if !fileutils.FileExists(filePath) {
		return nil, &apperror.InputReadError{Path: filePath, Err: errors.New("file does not exist or is a directory")}
	}
	data, err := os.ReadFile(filePath) // #nosec G304 -- path supplied by the user on purpose
	if err != nil {
		return nil, &apperror.InputReadError{Path: filePath, Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	records, err := newStatementReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, &apperror.InputReadError{Path: filePath, Err: err}
	}
	if len(records) == 0 {
		return nil, &apperror.InputReadError{Path: filePath, Err: errors.New("file is empty")}
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) > len(header) {
			return nil, &apperror.InputReadError{Path: filePath,
				Err: fmt.Errorf("record %d has %d fields, header has %d", i+2, len(record), len(header))}
		}
		row := make(Row, len(header))
		for j, col := range header {
			if j < len(record) {
				row[col] = record[j]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return &Table{Header: header, Rows: rows}, nil
}

// WriteRecords writes records with a header row and no index column.
// The file only appears once it has been written completely.
func WriteRecords(filePath string, records []Record, mode Mode, delimiter rune) error {
	var out interface{}
	switch mode {
	case ModeCreditCard:
		rows := make([]creditCardCSVRow, len(records))
		for i, r := range records {
			rows[i] = creditCardCSVRow{TransactionDate: r.Date, Description: r.Description, Amount: r.Amount}
		}
		out = rows
	default:
		rows := make([]accountCSVRow, len(records))
		for i, r := range records {
			rows[i] = accountCSVRow{Date: r.Date, Description: r.Description, Amount: r.Amount}
		}
		out = rows
	}

	return fileutils.WriteFileAtomic(filePath, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		csvWriter.Comma = delimiter

		if err := gocsv.MarshalCSV(out, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
		csvWriter.Flush()
		return csvWriter.Error()
	})
}
