// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors so callers can pick the right recovery path

package errors

import (
	"errors"
	"fmt"
)

// StorageReadError represents a failed read from the key-value store
type StorageReadError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageReadError) Error() string {
	return fmt.Sprintf("storage read failed for key %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// StorageWriteError represents a failed write to the key-value store
type StorageWriteError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write failed for key %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// CorruptDataError represents a blob that could not be deserialized
type CorruptDataError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data under key %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// MigrationError represents a failed schema migration step
type MigrationError struct {
	FromVersion int
	ToVersion   int
	Err         error
}

// Error implements the error interface
func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %d -> %d failed: %v", e.FromVersion, e.ToVersion, e.Err)
}

// Unwrap returns the underlying error
func (e *MigrationError) Unwrap() error {
	return e.Err
}

// FetchError represents a failed or timed-out remote article fetch
type FetchError struct {
	Request    string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %q: status %d", e.Request, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %q: %v", e.Request, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsStorageRead checks if an error is a StorageReadError
func IsStorageRead(err error) bool {
	var readErr *StorageReadError
	return errors.As(err, &readErr)
}

// IsStorageWrite checks if an error is a StorageWriteError
func IsStorageWrite(err error) bool {
	var writeErr *StorageWriteError
	return errors.As(err, &writeErr)
}

// IsCorruptData checks if an error is a CorruptDataError
func IsCorruptData(err error) bool {
	var corruptErr *CorruptDataError
	return errors.As(err, &corruptErr)
}

// IsMigration checks if an error is a MigrationError
func IsMigration(err error) bool {
	var migrationErr *MigrationError
	return errors.As(err, &migrationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
