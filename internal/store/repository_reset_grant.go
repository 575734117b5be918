package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/models"
)

// resetGrantRepository is the PostgreSQL-backed [ResetGrantRepository] over
// the "password_reset_grants" table.
type resetGrantRepository struct {
	*DB
	logger *logger.Logger
}

func NewResetGrantRepository(db *DB, logger *logger.Logger) ResetGrantRepository {
	logger.Debug().Msg("creating reset grant repository")
	return &resetGrantRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *resetGrantRepository) CreateResetGrant(ctx context.Context, grant models.ResetGrant) error {
	log := logger.FromContext(ctx)

	if _, err := r.ExecContext(ctx, createResetGrant, grant.ID, grant.Email, grant.ExpiresAt); err != nil {
		log.Err(err).
			Str("func", "*resetGrantRepository.CreateResetGrant").
			Str("email", grant.Email).
			Msg("error inserting reset grant")
		return r.classify(err, ErrExecutingStatement)
	}

	return nil
}

// ConsumeResetGrant deletes the grant with a single DELETE ... RETURNING,
// so a grant can be consumed at most once.
func (r *resetGrantRepository) ConsumeResetGrant(ctx context.Context, grantID, email string, now time.Time) (models.ResetGrant, error) {
	log := logger.FromContext(ctx)

	var grant models.ResetGrant
	err := r.QueryRowContext(ctx, consumeResetGrant, grantID, email, now).
		Scan(&grant.ID, &grant.Email, &grant.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResetGrant{}, ErrResetGrantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetGrantRepository.ConsumeResetGrant").Msg("error consuming reset grant")
		return models.ResetGrant{}, r.classify(err, ErrExecutingQuery)
	}

	return grant, nil
}

func (r *resetGrantRepository) DeleteExpiredResetGrants(ctx context.Context, now time.Time) (int64, error) {
	return r.deleteExpired(ctx, "password_reset_grants", now)
}
