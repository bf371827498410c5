package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Is understands marks added by Mark as well as standard wrapping.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ValidationError carries every missing field name of a request at once.
type ValidationError struct {
	Message       string
	MissingFields []string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.MissingFields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func NewValidationError(msg string, missing ...string) error {
	return &ValidationError{Message: msg, MissingFields: missing}
}

// UpstreamError is a provider failure that keeps the upstream status and raw body
// so handlers can mirror them to the caller.
type UpstreamError struct {
	Status  int
	Message string
	Details string
	cause   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}

func NewUpstreamError(cause error, status int, msg, details string) *UpstreamError {
	return &UpstreamError{Status: status, Message: msg, Details: details, cause: cause}
}

func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if cr.As(err, &v) {
		return v, true
	}
	return nil, false
}

func AsUpstream(err error) (*UpstreamError, bool) {
	var u *UpstreamError
	if cr.As(err, &u) {
		return u, true
	}
	return nil, false
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
