package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories how a failed database operation should be reported.
type ErrorClassification int

const (
	// Unexpected covers every failure not matched by a more specific class.
	Unexpected ErrorClassification = iota

	// Unavailable indicates the database could not be reached or refused
	// the connection (SQLSTATE class 08, 57P03, driver.ErrBadConn).
	Unavailable

	// Conflict indicates a unique constraint violation (23505).
	Conflict

	// ForeignKeyMissing indicates a referenced row does not exist (23503).
	ForeignKeyMissing
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. Broken driver
// connections are [Unavailable]; anything else is [Unexpected].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unexpected
	}

	if errors.Is(err, driver.ErrBadConn) {
		return Unavailable
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unexpected
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	// Class 08: connection exceptions
	case pgerrcode.IsConnectionException(pgErr.Code):
		return Unavailable

	// Class 57: operator intervention
	case pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CrashShutdown:
		return Unavailable

	case pgErr.Code == pgerrcode.UniqueViolation:
		return Conflict

	case pgErr.Code == pgerrcode.ForeignKeyViolation:
		return ForeignKeyMissing
	}

	return Unexpected
}

// postgresError returns the SQLSTATE of err, or "" if err is not a server error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
