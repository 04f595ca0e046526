package report

import (
	"context"
	"fmt"

	"wwilson/ops-scripts/internal/logging"
	"wwilson/ops-scripts/internal/mmws"
)

// RangeSource is the part of the web service the report needs.
type RangeSource interface {
	SelectAddressSpace(ctx context.Context, input string) (*mmws.AddressSpace, error)
	GetRanges(ctx context.Context, limit int) (*mmws.RangeList, error)
}

// Options configures a report run.
type Options struct {
	AddressSpace string
	Limit        int
	OutputFile   string
	Sheet        string
}

// Result describes a written report.
type Result struct {
	AddressSpace *mmws.AddressSpace
	Rows         int
	TotalResults int
	OutputFile   string
}

// Builder selects the address space, fetches its ranges and writes the workbook.
type Builder struct {
	source RangeSource
	logger logging.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(source RangeSource, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text", nil)
	}
	return &Builder{source: source, logger: logger}
}

// Build runs the whole report. Nothing is written unless every API call succeeds.
func (b *Builder) Build(ctx context.Context, opts Options) (*Result, error) {
	space, err := b.source.SelectAddressSpace(ctx, opts.AddressSpace)
	if err != nil {
		return nil, err
	}

	list, err := b.source.GetRanges(ctx, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("error getting ranges: %w", err)
	}
	if list.TotalResults > len(list.Ranges) {
		b.logger.Warn("Server returned fewer ranges than it reported, the report is partial",
			logging.Field{Key: logging.FieldCount, Value: len(list.Ranges)},
			logging.Field{Key: "total_results", Value: list.TotalResults})
	}

	b.logger.Info("Starting looping through ranges", logging.Field{Key: logging.FieldCount, Value: len(list.Ranges)})
	rows := make([]Row, 0, len(list.Ranges))
	for _, r := range list.Ranges {
		rows = append(rows, Flatten(r).Sanitize())
	}
	b.logger.Info("Finished looping through ranges")

	log := b.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: opts.OutputFile},
		logging.Field{Key: logging.FieldSheet, Value: opts.Sheet},
	)
	log.Info("Starting build of report")
	if err := WriteXLSX(opts.OutputFile, opts.Sheet, rows); err != nil {
		return nil, fmt.Errorf("error writing report %s: %w", opts.OutputFile, err)
	}
	log.Info("Completed building report", logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return &Result{
		AddressSpace: space,
		Rows:         len(rows),
		TotalResults: list.TotalResults,
		OutputFile:   opts.OutputFile,
	}, nil
}
