package serrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Codes of the error classes used across services and repositories.
// Repositories raise them, the HTTP layer maps them to status codes and
// never leaks store-level detail past this boundary.
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeNotFound         = "NOT_FOUND"
	CodeNoRowsAffected   = "NO_ROWS_AFFECTED"
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeStoreFault       = "STORE_FAULT"
)

type Error struct {
	Code    string
	Message string
	Details string
}

func NewError(code, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

func InvalidArgument(message string) *Error {
	return NewError(CodeInvalidArgument, message, "")
}

func NotFound(message string) *Error {
	return NewError(CodeNotFound, message, "")
}

func NoRowsAffected(message string) *Error {
	return NewError(CodeNoRowsAffected, message, "")
}

func InvalidOperation(message string) *Error {
	return NewError(CodeInvalidOperation, message, "")
}

// Fault carries a provider-level failure unchanged so callers can still
// inspect the driver error (e.g. the SQLSTATE of a constraint violation).
type Fault struct {
	Message string
	Err     error
}

func StoreFault(message string, err error) *Fault {
	return &Fault{Message: message, Err: err}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %v", f.Message, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func is(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsInvalidArgument(err error) bool  { return is(err, CodeInvalidArgument) }
func IsNotFound(err error) bool         { return is(err, CodeNotFound) }
func IsNoRowsAffected(err error) bool   { return is(err, CodeNoRowsAffected) }
func IsInvalidOperation(err error) bool { return is(err, CodeInvalidOperation) }

func IsStoreFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}

// SQLState returns the PostgreSQL error code buried in err, or "".
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Postgres SQLSTATE classes relevant to the write paths.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	return SQLState(err) == sqlStateUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return SQLState(err) == sqlStateForeignKeyViolation
}
