package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input read error",
			err:      &InputReadError{Path: "statement.csv", Err: errors.New("no such file or directory")},
			expected: "failed to read input file 'statement.csv': no such file or directory",
		},
		{
			name:     "schema mismatch",
			err:      &SchemaMismatchError{Column: "Card", Mode: "credit card"},
			expected: "column 'Card' not found in input for credit card mode",
		},
		{
			name:     "transport error",
			err:      &APITransportError{Method: "GET", URL: "http://mm/mmws/api/Ranges", Err: errors.New("connection refused")},
			expected: "GET http://mm/mmws/api/Ranges failed: connection refused",
		},
		{
			name:     "response error",
			err:      &APIResponseError{URL: "http://mm/mmws/api/Ranges", StatusCode: 500, Message: "Invalid filter"},
			expected: "API error 500 from http://mm/mmws/api/Ranges: Invalid filter",
		},
		{
			name:     "not found",
			err:      &NotFoundError{URL: "http://mm/mmws/api/AddressSpaces"},
			expected: "API returned 404 for http://mm/mmws/api/AddressSpaces",
		},
		{
			name:     "address space resolution",
			err:      &AddressSpaceResolutionError{Input: "Corp-Site-A"},
			expected: "address space not found for user input 'Corp-Site-A'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("timeout")

	readErr := &InputReadError{Path: "x.csv", Err: cause}
	assert.True(t, errors.Is(readErr, cause))

	transportErr := &APITransportError{Method: "POST", URL: "http://mm", Err: cause}
	assert.True(t, errors.Is(transportErr, cause))
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("selecting address space: %w", &AddressSpaceResolutionError{Input: "7"})

	var target *AddressSpaceResolutionError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "7", target.Input)

	var notFound *NotFoundError
	assert.False(t, errors.As(wrapped, &notFound))
}
