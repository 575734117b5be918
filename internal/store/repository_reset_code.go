package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/models"
)

// resetCodeRepository is the PostgreSQL-backed [ResetCodeRepository] over
// the "password_resets" table.
type resetCodeRepository struct {
	*DB
	logger *logger.Logger
}

func NewResetCodeRepository(db *DB, logger *logger.Logger) ResetCodeRepository {
	logger.Debug().Msg("creating reset code repository")
	return &resetCodeRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertResetCode stores code for its email, replacing any previous code in
// the same statement.
func (r *resetCodeRepository) UpsertResetCode(ctx context.Context, code models.ResetCode) error {
	log := logger.FromContext(ctx)

	if _, err := r.ExecContext(ctx, upsertResetCode, code.Email, code.Code, code.ExpiresAt); err != nil {
		log.Err(err).
			Str("func", "*resetCodeRepository.UpsertResetCode").
			Str("email", code.Email).
			Msg("error upserting reset code")

		if r.errorClassificator.Classify(err) == ForeignKeyMissing {
			return fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
		}
		return r.classify(err, ErrExecutingStatement)
	}

	return nil
}

// FindValidResetCode returns the code row for email and code that expires
// strictly after now.
func (r *resetCodeRepository) FindValidResetCode(ctx context.Context, email, code string, now time.Time) (models.ResetCode, error) {
	log := logger.FromContext(ctx)

	var found models.ResetCode
	err := r.QueryRowContext(ctx, findValidResetCode, email, code, now).
		Scan(&found.Email, &found.Code, &found.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResetCode{}, ErrResetCodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.FindValidResetCode").Msg("error selecting reset code")
		return models.ResetCode{}, r.classify(err, ErrExecutingQuery)
	}

	return found, nil
}

func (r *resetCodeRepository) DeleteResetCodeByEmail(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.ExecContext(ctx, deleteResetCodeByEmail, email); err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.DeleteResetCodeByEmail").Msg("error deleting reset code")
		return r.classify(err, ErrExecutingStatement)
	}

	return nil
}

// ConsumeResetCode locks the matching unexpired row and deletes it in one
// transaction. A concurrent consumer blocks on the lock and then finds no
// row, so it gets [ErrResetCodeNotFound].
func (r *resetCodeRepository) ConsumeResetCode(ctx context.Context, email, code string, now time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*resetCodeRepository.ConsumeResetCode").
			Msg("failed to begin transaction")
		return r.classify(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	var found models.ResetCode
	err = tx.QueryRowContext(ctx, findValidResetCodeForUpdate, email, code, now).
		Scan(&found.Email, &found.Code, &found.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrResetCodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.ConsumeResetCode").Msg("error locking reset code")
		return r.classify(err, ErrExecutingQuery)
	}

	if _, err = tx.ExecContext(ctx, deleteResetCodeByEmail, email); err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.ConsumeResetCode").Msg("error deleting reset code")
		return r.classify(err, ErrExecutingStatement)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*resetCodeRepository.ConsumeResetCode").
			Msg("failed to commit transaction")
		return r.classify(commitErr, ErrCommitingTransaction)
	}

	return nil
}

func (r *resetCodeRepository) DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	return r.deleteExpired(ctx, "password_resets", now)
}

// deleteExpired removes rows of table whose expires_at is not after now.
func (db *DB) deleteExpired(ctx context.Context, table string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredQuery(table, now)
	if err != nil {
		log.Err(err).Str("func", "*DB.deleteExpired").Str("table", table).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.deleteExpired").Str("table", table).Msg("error deleting expired rows")
		return 0, db.classify(err, ErrExecutingStatement)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
