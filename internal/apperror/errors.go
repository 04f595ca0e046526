// Package apperror defines the error types returned by the ops-scripts commands.
// Every error is terminal for the current run; callers decide whether to log and abort.
package apperror

import "fmt"

// InputReadError represents a failure to open or decode an input file
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("failed to read input file '%s': %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError represents a source column missing from the input for the selected mode.
type SchemaMismatchError struct {
	Column string
	Mode   string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("column '%s' not found in input for %s mode", e.Column, e.Mode)
}

// APITransportError represents a network-level failure (connection refused, timeout, ...)
type APITransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *APITransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *APITransportError) Unwrap() error {
	return e.Err
}

// APIResponseError represents a non-success response carrying a server-supplied message.
// Not-found responses are reported as NotFoundError instead.
type APIResponseError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *APIResponseError) Error() string {
	return fmt.Sprintf("API error %d from %s: %s", e.StatusCode, e.URL, e.Message)
}

// NotFoundError represents a 404 returned by a lookup.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("API returned 404 for %s", e.URL)
}

// AddressSpaceResolutionError is returned when no address space matches the user input.
type AddressSpaceResolutionError struct {
	Input string
}

func (e *AddressSpaceResolutionError) Error() string {
	return fmt.Sprintf("address space not found for user input '%s'", e.Input)
}
