// Package lineerr classifies failures reported by the remote line service.
package lineerr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estimate_editor/internal/domain/entities"
)

var (
	ErrNotFound   = errors.New("line not found")
	ErrPermission = errors.New("permission denied")
	ErrNetwork    = errors.New("line service unavailable")
	ErrConflict   = errors.New("conflicting write")
)

// Kind is the handling class of a failure.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindNotFound
	KindPermission
	KindNetwork
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPermission:
		return "permission"
	case KindNetwork:
		return "network"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Retryable reports whether the sync engine may resend the write.
func (k Kind) Retryable() bool {
	return k == KindNetwork || k == KindConflict
}

// ValidationError reports a field value rejected by the line service.
type ValidationError struct {
	Field  entities.Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Validation(field entities.Field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Network wraps a transport failure so it classifies as retryable.
func Network(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// Classify maps an error to its handling class. Unrecognized errors are treated as
// transient so that local edits are preserved and the write is retried.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrPermission):
		return KindPermission
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return KindNetwork
	}
	return KindNetwork
}

// RejectedFields lists every field named by validation errors in err, including
// errors combined with errors.Join.
func RejectedFields(err error) []entities.Field {
	var out []entities.Field
	seen := map[entities.Field]bool{}
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if ve, ok := e.(*ValidationError); ok {
			if !seen[ve.Field] {
				seen[ve.Field] = true
				out = append(out, ve.Field)
			}
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

// Error codes used when line-service failures cross HTTP.
const (
	CodeValidation  = "VALIDATION_FAILED"
	CodeNotFound    = "LINE_NOT_FOUND"
	CodePermission  = "PERMISSION_DENIED"
	CodeConflict    = "CONFLICT"
	CodeUnavailable = "LINE_SERVICE_UNAVAILABLE"
)

// Code returns the wire code of a failure.
func Code(err error) string {
	switch Classify(err) {
	case KindValidation:
		return CodeValidation
	case KindNotFound:
		return CodeNotFound
	case KindPermission:
		return CodePermission
	case KindConflict:
		return CodeConflict
	}
	return CodeUnavailable
}

// FromCode rebuilds a classified error from its wire form. field may list several
// comma-separated fields. Unknown codes classify as network failures.
func FromCode(code, field, message string) error {
	switch code {
	case CodeValidation:
		var errs []error
		for _, f := range strings.Split(field, ",") {
			errs = append(errs, Validation(entities.Field(strings.TrimSpace(f)), message))
		}
		return errors.Join(errs...)
	case CodeNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case CodePermission:
		return fmt.Errorf("%w: %s", ErrPermission, message)
	case CodeConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	}
	return Network(fmt.Errorf("%s: %s", code, message))
}

// FieldList renders the rejected fields of err in wire form.
func FieldList(err error) string {
	fields := RejectedFields(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return strings.Join(names, ",")
}
