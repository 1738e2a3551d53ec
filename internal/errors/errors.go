// Package errors provides custom error types and utilities for trackr.
//
// This package provides error handling for various operations including:
// - Usage errors (no way to obtain a credential)
// - Credential storage errors
// - Session notification failures
// - HTTP and validation errors
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories for trackr operations
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNetwork        = errors.New("network error")
	ErrConfiguration  = errors.New("configuration error")
	ErrUsage          = errors.New("usage error")
	ErrStorage        = errors.New("storage error")
	ErrNotification   = errors.New("notification failure")
	ErrChannelClosed  = errors.New("session channel closed")
	ErrNotInteractive = errors.New("non-interactive terminal")
)

// Usage error reasons.
const (
	ReasonNoTTY      = "no-tty"
	ReasonInvalidKey = "invalid-key"
	ReasonEmptyKey   = "empty-key"
	ReasonRejected   = "rejected-key"
)

// UsageError means no usable credential exists and there is no way to
// obtain one. Callers must stop rather than retry.
type UsageError struct {
	Reason  string
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Reason)
	}
	return e.Message
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func (e *UsageError) Is(target error) bool {
	return errors.Is(target, ErrUsage)
}

// NewUsageError creates a new usage error
func NewUsageError(reason, message string, err error) *UsageError {
	return &UsageError{
		Reason:  reason,
		Message: message,
		Err:     err,
	}
}

// IsUsage checks if an error is a usage error
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// UsageReason returns the reason of the first UsageError in the chain.
func UsageReason(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr.Reason
	}
	return ""
}

// StorageError means the credential location could not be read or written.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("credential storage %s failed for '%s': %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return errors.Is(target, ErrStorage)
}

// NewStorageError creates a new storage error
func NewStorageError(op, path string, err error) *StorageError {
	return &StorageError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsStorage checks if an error is storage-related
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// NotificationFailure means a session channel did not accept a credential.
// It never invalidates a login.
type NotificationFailure struct {
	Err error
}

func (e *NotificationFailure) Error() string {
	return fmt.Sprintf("failed to notify session channel: %v", e.Err)
}

func (e *NotificationFailure) Unwrap() error {
	return e.Err
}

func (e *NotificationFailure) Is(target error) bool {
	return errors.Is(target, ErrNotification)
}

// NewNotificationFailure creates a new notification failure
func NewNotificationFailure(err error) *NotificationFailure {
	return &NotificationFailure{Err: err}
}

// IsNotification checks if an error is a notification failure
func IsNotification(err error) bool {
	return errors.Is(err, ErrNotification)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrConfiguration)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return errors.Is(target, ErrInvalidInput)
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// HTTPError represents an HTTP-related error
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s %s", e.StatusCode, e.Method, e.URL)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return errors.Is(target, ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Is(target, ErrUnauthorized)
	case http.StatusBadRequest:
		return errors.Is(target, ErrInvalidInput)
	default:
		return false
	}
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, method, url, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Message:    message,
	}
}

// IsHTTPStatus checks if an error represents a specific HTTP status
func IsHTTPStatus(err error, statusCode int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}
	return false
}

// NewNetworkError wraps a transport failure so IsNetwork recognizes it.
func NewNetworkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || IsHTTPStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error represents an authorization failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		IsHTTPStatus(err, http.StatusUnauthorized) ||
		IsHTTPStatus(err, http.StatusForbidden)
}

// IsNetwork checks if an error is network-related
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
