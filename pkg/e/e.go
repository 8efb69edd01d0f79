package e

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUpload          = errors.New("upload failed")
	ErrEventQueueEmpty = errors.New("event queue is empty")
)

// ValidationError carries the offending field names so the HTTP layer can
// report them back. It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []string
	Reason string
}

func NewValidationError(reason string, fields ...string) *ValidationError {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return &ValidationError{Fields: sorted, Reason: reason}
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return v.Reason
	}
	return fmt.Sprintf("%s: %s", v.Reason, strings.Join(v.Fields, ", "))
}

func (v *ValidationError) Unwrap() error { return ErrInvalidInput }

// UploadError is returned when the object store rejected a photo or thumbnail.
type UploadError struct {
	Key    string
	Reason string
}

func (u *UploadError) Error() string {
	if u.Key == "" {
		return fmt.Sprintf("upload failed: %s", u.Reason)
	}
	return fmt.Sprintf("upload %s failed: %s", u.Key, u.Reason)
}

func (u *UploadError) Unwrap() error { return ErrUpload }

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514", "22001", "22003":
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
