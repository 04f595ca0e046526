// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"wwilson/ops-scripts/internal/logging"
)

// Fail logs err with its full detail and returns a short, user facing error that
// main prints before exiting non-zero.
func Fail(log logging.Logger, summary string, err error) error {
	log.WithError(err).Error(summary, logging.Field{Key: logging.FieldError, Value: fmt.Sprintf("%+v", err)})
	return fmt.Errorf("%s, check the logs for more details: %w", summary, err)
}
