// Package statement reshapes ANZ bank statement exports into a three-column CSV:
// a date, a description built by concatenating the descriptive columns, and the
// amount with its currency formatting stripped.
package statement

import (
	"strings"

	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/currencyutils"
)

// Mode selects the statement schema.
type Mode int

const (
	// ModeAccount is the everyday/savings account export.
	ModeAccount Mode = iota
	// ModeCreditCard is the credit card export.
	ModeCreditCard
)

func (m Mode) String() string {
	if m == ModeCreditCard {
		return "credit card"
	}
	return "account"
}

// Source and output column names.
const (
	ColType            = "Type"
	ColDetails         = "Details"
	ColParticulars     = "Particulars"
	ColCode            = "Code"
	ColReference       = "Reference"
	ColCard            = "Card"
	ColDate            = "Date"
	ColTransactionDate = "TransactionDate"
	ColDescription     = "Description"
	ColAmount          = "Amount"
)

// DefaultMissingPlaceholder is the text a missing cell contributes to a description.
const DefaultMissingPlaceholder = "nan"

// missingValues are the cell texts read as missing, the same set pandas uses by default.
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether a cell counts as missing.
func IsMissing(v string) bool {
	_, ok := missingValues[v]
	return ok
}

type schema struct {
	descriptionCols []string
	dateCol         string
}

var schemas = map[Mode]schema{
	ModeAccount: {
		descriptionCols: []string{ColType, ColDetails, ColParticulars, ColCode, ColReference},
		dateCol:         ColDate,
	},
	ModeCreditCard: {
		descriptionCols: []string{ColCard, ColDetails},
		dateCol:         ColTransactionDate,
	},
}

// Header returns the output columns for the mode.
func (m Mode) Header() []string {
	return []string{schemas[m].dateCol, ColDescription, ColAmount}
}

// Row is one input record keyed by column name.
type Row map[string]string

// Table is a parsed input file.
type Table struct {
	Header []string
	Rows   []Row
}

// Record is one reshaped output row.
type Record struct {
	Date        string
	Description string
	Amount      string
}

// Reshape builds the output records for the given mode.
// Every source column the mode needs must be present in the header, otherwise a
// *apperror.SchemaMismatchError is returned and no records are produced.
// Missing cells (see IsMissing) are rendered as placeholder inside the description
// and the amount, and as an empty date. Other dates are copied as-is.
func Reshape(table *Table, mode Mode, placeholder string) ([]Record, error) {
	s := schemas[mode]
	if err := checkColumns(table.Header, mode, s); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(table.Rows))
	parts := make([]string, len(s.descriptionCols))
	for _, row := range table.Rows {
		for i, col := range s.descriptionCols {
			parts[i] = valueOrPlaceholder(row[col], placeholder)
		}
		records = append(records, Record{
			Date:        dateOrEmpty(row[s.dateCol]),
			Description: strings.Join(parts, " "),
			Amount:      currencyutils.StripCurrency(valueOrPlaceholder(row[ColAmount], placeholder)),
		})
	}
	return records, nil
}

func checkColumns(header []string, mode Mode, s schema) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	required := append(append([]string{}, s.descriptionCols...), s.dateCol, ColAmount)
	for _, col := range required {
		if !present[col] {
			return &apperror.SchemaMismatchError{Column: col, Mode: mode.String()}
		}
	}
	return nil
}

func valueOrPlaceholder(v, placeholder string) string {
	if IsMissing(v) {
		return placeholder
	}
	return v
}

func dateOrEmpty(v string) string {
	if IsMissing(v) {
		return ""
	}
	return v
}
