package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// a miss is an expected outcome for expiring keys
	level := slog.LevelError
	if kind == KindNotFound {
		level = slog.LevelDebug
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func AsRepositoryError(err error) (RepositoryError, bool) {
	var e RepositoryError
	if errors.As(err, &e) {
		return e, true
	}
	return RepositoryError{}, false
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Store error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindStoreFailure RepositoryErrorKind = "STORE_FAILURE"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindCorrupted    RepositoryErrorKind = "CORRUPTED"
)

type GatewayErrorKind string

// GatewayError is a failed provider call. Status and Body are set when the
// provider answered with a non-2xx status.
type GatewayError struct {
	Kind   GatewayErrorKind
	Status int
	Body   string
	msg    string
	err    error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, status int, body string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status), slog.String("body", body))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Warn("Provider error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Status: status, Body: body, msg: msg, err: err}
}

// ProviderMessage extracts the "message" field of an upstream error body.
func (e GatewayError) ProviderMessage() (string, bool) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return "", false
	}
	return body.Message, true
}

func AsGatewayError(err error) (GatewayError, bool) {
	var e GatewayError
	if errors.As(err, &e) {
		return e, true
	}
	return GatewayError{}, false
}

func IsGatewayKind(err error, kind GatewayErrorKind) bool {
	e, ok := AsGatewayError(err)
	return ok && e.Kind == kind
}

// Provider error kinds
const (
	KindTransport        GatewayErrorKind = "TRANSPORT"
	KindUpstreamStatus   GatewayErrorKind = "UPSTREAM_STATUS"
	KindDecode           GatewayErrorKind = "DECODE"
	KindUnexpectedFormat GatewayErrorKind = "UNEXPECTED_FORMAT"
)
