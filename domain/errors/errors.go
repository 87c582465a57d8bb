// Package errors provides domain-specific error types for the SDK.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
)

// DetailedError is an interface for custom error types that can convert
// themselves to a structured ErrorDetail. New error types only need to
// implement this interface without modifying ToErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to a structured ErrorDetail,
// recognizing the SDK's own error types.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// EncodingError reports that an argument byte range was not valid UTF-8.
// Decoding is strict and whole-range: there is no partial-success mode,
// and failure is never transient.
type EncodingError struct {
	// Length of the rejected byte range.
	Length int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("argument bytes (%d) are not valid UTF-8", e.Length)
}

// ToErrorDetail implements DetailedError.
func (e *EncodingError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "encoding", Code: "invalid_utf8"}
}

// BoundsError reports that a byte range fell outside the pack's linear
// memory. Only the host runtime can observe this; the guest must trust
// the range it is handed.
type BoundsError struct {
	Op   string // "read" or "write"
	View entities.ArgumentView
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s of [%d, %d) is outside pack memory", e.Op, e.View.Ptr, e.View.Ptr+e.View.Len)
}

// ToErrorDetail implements DetailedError.
func (e *BoundsError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "bounds", Code: e.Op}
}

// MemoryError represents a guest memory allocation failure.
type MemoryError struct {
	Requested int // Requested allocation size
	Current   int // Current total allocated
	Limit     int // Maximum allowed
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory allocation failed: requested %d bytes, current %d bytes, limit %d bytes",
		e.Requested, e.Current, e.Limit)
}

// ToErrorDetail implements DetailedError.
func (e *MemoryError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "memory_limit"}
}

// ManifestError represents a pack manifest parse or validation error.
type ManifestError struct {
	Err   error
	Field string
}

func (e *ManifestError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("manifest validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("manifest validation failed: %v", e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ManifestError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "manifest", Code: e.Field}
}
