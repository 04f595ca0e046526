package statement

import (
	"fmt"

	"wwilson/ops-scripts/internal/currencyutils"
	"wwilson/ops-scripts/internal/logging"
)

// Options configures a single conversion.
type Options struct {
	InputFile          string
	OutputFile         string
	Mode               Mode
	Delimiter          rune
	MissingPlaceholder string
}

// Summary describes a completed conversion.
type Summary struct {
	Rows  int
	Total currencyutils.Total
}

// Converter runs read, reshape and write in sequence.
type Converter struct {
	logger logging.Logger
}

// NewConverter creates a Converter. A nil logger falls back to a stderr logger.
func NewConverter(logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text", nil)
	}
	return &Converter{logger: logger}
}

// Convert reads opts.InputFile, reshapes it and writes opts.OutputFile.
// Nothing is written unless reading and reshaping succeed.
func (c *Converter) Convert(opts Options) (*Summary, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.MissingPlaceholder == "" {
		opts.MissingPlaceholder = DefaultMissingPlaceholder
	}

	log := c.logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: opts.InputFile},
		logging.Field{Key: logging.FieldMode, Value: opts.Mode.String()},
	)
	log.Info("Reading statement")

	table, err := ReadTable(opts.InputFile)
	if err != nil {
		return nil, err
	}
	log.Debug("Read statement", logging.Field{Key: "columns", Value: table.Header},
		logging.Field{Key: "output_columns", Value: opts.Mode.Header()},
		logging.Field{Key: logging.FieldCount, Value: len(table.Rows)})

	records, err := Reshape(table, opts.Mode, opts.MissingPlaceholder)
	if err != nil {
		return nil, err
	}

	amounts := make([]string, len(records))
	for i, r := range records {
		amounts[i] = r.Amount
		log.Debug("Reshaped row",
			logging.Field{Key: "row", Value: i},
			logging.Field{Key: "date", Value: r.Date},
			logging.Field{Key: "description", Value: r.Description},
			logging.Field{Key: "amount", Value: r.Amount})
	}

	if err := WriteRecords(opts.OutputFile, records, opts.Mode, opts.Delimiter); err != nil {
		return nil, fmt.Errorf("error writing output file %s: %w", opts.OutputFile, err)
	}

	summary := &Summary{Rows: len(records), Total: currencyutils.SumAmounts(amounts)}
	log.Info("Wrote statement",
		logging.Field{Key: logging.FieldOutputFile, Value: opts.OutputFile},
		logging.Field{Key: logging.FieldDelimiter, Value: string(opts.Delimiter)},
		logging.Field{Key: logging.FieldCount, Value: summary.Rows},
		logging.Field{Key: "total", Value: summary.Total.Sum.StringFixed(2)},
		logging.Field{Key: "unparsed_amounts", Value: summary.Total.Skipped})
	return summary, nil
}
