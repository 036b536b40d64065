package errors

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// reKeyField extracts field name from a Postgres unique violation detail: "Key (field)=(value) already exists.".
	reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)
	// reSQLiteField extracts "table.column" from "UNIQUE constraint failed: centers.account_no".
	reSQLiteField = regexp.MustCompile(`constraint failed: [a-z_]+\.([a-z_]+)`)
)

// MapDBError maps local store driver errors to AppError instances.
// Both store dialects are handled:
// - sql.ErrNoRows / pgx.ErrNoRows → NotFound
// - Postgres and SQLite unique violations → Conflict
// - Postgres and SQLite NOT NULL / CHECK violations → Validation
// - Context timeouts/cancellations → Timeout/Canceled
//
// If the error is not a recognized database error, it returns the original error.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "Local store timed out. Please try again.", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "Local store request was canceled.", Cause: err}
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "Record not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return mapSQLiteError(liteErr)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		field := pgErr.ColumnName
		if field == "" && pgErr.Detail != "" {
			if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
				field = m[1]
			}
		}
		return &AppError{Code: ErrCodeConflict, Message: "This record is already stored.", Field: field, Cause: pgErr}
	case pgerrcode.NotNullViolation:
		return &AppError{Code: ErrCodeValidation, Message: "This field is required.", Field: pgErr.ColumnName, Cause: pgErr}
	case pgerrcode.CheckViolation:
		return &AppError{Code: ErrCodeValidation, Message: "Invalid data. Please check your input.", Field: pgErr.ColumnName, Cause: pgErr}
	case pgerrcode.QueryCanceled:
		return &AppError{Code: ErrCodeTimeout, Message: "Local store timed out. Please try again.", Cause: pgErr}
	default:
		return &AppError{Code: ErrCodeInternal, Message: "A local store error occurred. Please try again.", Cause: pgErr}
	}
}

func mapSQLiteError(liteErr sqlite3.Error) error {
	field := ""
	if m := reSQLiteField.FindStringSubmatch(strings.ToLower(liteErr.Error())); len(m) == 2 {
		field = m[1]
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &AppError{Code: ErrCodeConflict, Message: "This record is already stored.", Field: field, Cause: liteErr}
	case sqlite3.ErrConstraintNotNull:
		return &AppError{Code: ErrCodeValidation, Message: "This field is required.", Field: field, Cause: liteErr}
	case sqlite3.ErrConstraintCheck:
		return &AppError{Code: ErrCodeValidation, Message: "Invalid data. Please check your input.", Field: field, Cause: liteErr}
	}

	if liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked {
		return &AppError{Code: ErrCodeTimeout, Message: "Local store is busy. Please try again.", Cause: liteErr}
	}
	return &AppError{Code: ErrCodeInternal, Message: "A local store error occurred. Please try again.", Cause: liteErr}
}
