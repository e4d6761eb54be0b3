// Package errors provides error types and handling for fnbridge.
// Every failure in the bridge is unrecoverable for the current invocation;
// the codes exist so callers and logs can tell the failure classes apart.
package errors

import (
	"errors"
	"fmt"
)

// BridgeError represents a failure while normalizing a request or encoding
// a response.
type BridgeError struct {
	// Code is an error code string for programmatic handling
	Code string
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *BridgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *BridgeError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with BridgeError.
func (e *BridgeError) Is(target error) bool {
	if t, ok := target.(*BridgeError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	// ErrCodeConfiguration: a recognized event family has no registered decoder.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
	// ErrCodeDecode: a typed event decoder rejected the payload bytes.
	ErrCodeDecode = "DECODE_ERROR"
	// ErrCodeParse: generic JSON parsing failed with no declared input type.
	ErrCodeParse = "PARSE_ERROR"
	// ErrCodeSerialization: producing outbound bytes failed.
	ErrCodeSerialization = "SERIALIZATION_ERROR"
	// ErrCodeStatusCoercion: a statusCode response header is not an integer.
	ErrCodeStatusCoercion = "STATUS_COERCION_ERROR"
	// ErrCodeInvalidRequest: the caller violated the bridge contract.
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// New creates a BridgeError with an arbitrary code.
func New(code, message string, cause error) *BridgeError {
	return &BridgeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrConfiguration creates a configuration error. It signals a misconfigured
// event-family registry rather than bad input.
func ErrConfiguration(message string, cause error) *BridgeError {
	return New(ErrCodeConfiguration, message, cause)
}

// ErrDecode creates a typed-decode error.
func ErrDecode(message string, cause error) *BridgeError {
	return New(ErrCodeDecode, message, cause)
}

// ErrParse creates a generic JSON parse error.
func ErrParse(message string, cause error) *BridgeError {
	return New(ErrCodeParse, message, cause)
}

// ErrSerialization creates an output-serialization error.
func ErrSerialization(message string, cause error) *BridgeError {
	return New(ErrCodeSerialization, message, cause)
}

// ErrStatusCoercion creates a status-code coercion error.
func ErrStatusCoercion(message string, cause error) *BridgeError {
	return New(ErrCodeStatusCoercion, message, cause)
}

// ErrInvalidRequest creates a contract-violation error.
func ErrInvalidRequest(message string, cause error) *BridgeError {
	return New(ErrCodeInvalidRequest, message, cause)
}

// GetCode extracts the error code from an error.
// Returns empty string if the error is not a BridgeError.
func GetCode(err error) string {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Code
	}
	return ""
}

// GetMessage extracts a human-readable message from an error.
func GetMessage(err error) string {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Message
	}
	return err.Error()
}

// GetDetails extracts detailed error information including the underlying cause.
// Returns the underlying error message if available, otherwise the main message.
func GetDetails(err error) string {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		if bridgeErr.Cause != nil {
			return bridgeErr.Cause.Error()
		}
		return bridgeErr.Message
	}
	return err.Error()
}
