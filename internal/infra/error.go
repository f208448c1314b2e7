package infra

import (
	"errors"
	"log/slog"

	"equipment-rental/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind   RepositoryErrorKind
	Record string
	msg    string
	err    error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	prefix := string(e.Kind)
	if e.Record != "" {
		prefix += " [" + e.Record + "]"
	}
	if e.err != nil {
		return prefix + ": " + e.msg + ": " + e.err.Error()
	}
	return prefix + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, record, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("record", record),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Record: record, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindDecodeFailure RepositoryErrorKind = "DECODE_FAILURE"
)
