package statement

import (
	"errors"
	"testing"

	"wwilson/ops-scripts/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountHeader = []string{"Type", "Details", "Particulars", "Code", "Reference", "Amount", "Date", "ForeignCurrencyAmount", "ConversionCharge"}

func TestReshape_Account(t *testing.T) {
	table := &Table{
		Header: accountHeader,
		Rows: []Row{
			{"Type": "Payment", "Details": "Online", "Particulars": "ACME", "Code": "REF1", "Reference": "INV99", "Date": "2024-01-01", "Amount": "$100.00"},
			{"Type": "Eft-Pos", "Details": "Cafe", "Particulars": "", "Code": "", "Reference": "4835", "Date": "02/01/2024", "Amount": "-$1,234.56"},
		},
	}

	records, err := Reshape(table, ModeAccount, DefaultMissingPlaceholder)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{Date: "2024-01-01", Description: "Payment Online ACME REF1 INV99", Amount: "100.00"}, records[0])
	assert.Equal(t, Record{Date: "02/01/2024", Description: "Eft-Pos Cafe nan nan 4835", Amount: "-1234.56"}, records[1])
}

func TestReshape_CreditCard(t *testing.T) {
	table := &Table{
		Header: []string{"Card", "Type", "Amount", "Details", "TransactionDate", "ProcessedDate", "ForeignCurrencyAmount", "ConversionCharge"},
		Rows: []Row{
			{"Card": "4835-****-****-1234", "Type": "D", "Amount": "$45.10", "Details": "SUPERMARKET", "TransactionDate": "2024-03-04"},
			{"Card": "4835-****-****-1234", "Type": "C", "Amount": "", "Details": "", "TransactionDate": "2024-03-05"},
		},
	}

	records, err := Reshape(table, ModeCreditCard, DefaultMissingPlaceholder)
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Date: "2024-03-04", Description: "4835-****-****-1234 SUPERMARKET", Amount: "45.10"},
		{Date: "2024-03-05", Description: "4835-****-****-1234 nan", Amount: "nan"},
	}, records)
}

func TestReshape_MissingValueTokens(t *testing.T) {
	table := &Table{
		Header: accountHeader,
		Rows: []Row{
			{"Type": "Payment", "Details": "Online", "Particulars": "NA", "Code": "N/A", "Reference": "INV99", "Date": "NULL", "Amount": "#N/A"},
			{"Type": "Fee", "Details": "null", "Particulars": "NaN", "Code": "None", "Reference": "n/a", "Date": "2024-01-03", "Amount": "$2"},
		},
	}

	records, err := Reshape(table, ModeAccount, DefaultMissingPlaceholder)
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Date: "", Description: "Payment Online nan nan INV99", Amount: "nan"},
		{Date: "2024-01-03", Description: "Fee nan nan nan nan", Amount: "2"},
	}, records)
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "NA", "N/A", "NULL", "null", "NaN", "nan", "#N/A", "<NA>", "None"} {
		assert.True(t, IsMissing(v), v)
	}
	for _, v := range []string{"0", " ", "na", "Null", "ACME", "N/A "} {
		assert.False(t, IsMissing(v), v)
	}
}

func TestReshape_CustomPlaceholder(t *testing.T) {
	table := &Table{
		Header: accountHeader,
		Rows:   []Row{{"Type": "Transfer", "Date": "2024-01-01", "Amount": "5"}},
	}

	records, err := Reshape(table, ModeAccount, "-")
	require.NoError(t, err)
	assert.Equal(t, "Transfer - - - -", records[0].Description)
}

func TestReshape_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		mode    Mode
		missing string
	}{
		{
			name:    "account file in credit card mode",
			header:  accountHeader,
			mode:    ModeCreditCard,
			missing: "Card",
		},
		{
			name:    "credit card file in account mode",
			header:  []string{"Card", "Type", "Amount", "Details", "TransactionDate"},
			mode:    ModeAccount,
			missing: "Particulars",
		},
		{
			name:    "missing amount",
			header:  []string{"Type", "Details", "Particulars", "Code", "Reference", "Date"},
			mode:    ModeAccount,
			missing: "Amount",
		},
		{
			name:    "missing date",
			header:  []string{"Card", "Details", "Amount"},
			mode:    ModeCreditCard,
			missing: "TransactionDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Reshape(&Table{Header: tt.header}, tt.mode, DefaultMissingPlaceholder)
			assert.Nil(t, records)

			var mismatch *apperror.SchemaMismatchError
			require.True(t, errors.As(err, &mismatch), "expected SchemaMismatchError, got %v", err)
			assert.Equal(t, tt.missing, mismatch.Column)
			assert.Equal(t, tt.mode.String(), mismatch.Mode)
		})
	}
}

func TestMode_HeadersAreDisjointOnDate(t *testing.T) {
	assert.Equal(t, []string{"Date", "Description", "Amount"}, ModeAccount.Header())
	assert.Equal(t, []string{"TransactionDate", "Description", "Amount"}, ModeCreditCard.Header())
	assert.NotContains(t, ModeAccount.Header(), "TransactionDate")
	assert.NotContains(t, ModeCreditCard.Header(), "Date")
}
