package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResetGrantRepo(t *testing.T) (*resetGrantRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &resetGrantRepository{DB: db, logger: logger.Nop()}, mock
}

func TestCreateResetGrant(t *testing.T) {
	repo, mock := newTestResetGrantRepo(t)
	grant := models.ResetGrant{ID: "grant-1", Email: "alice@example.com", ExpiresAt: time.Now().Add(time.Minute)}

	mock.ExpectExec("INSERT INTO password_reset_grants").
		WithArgs(grant.ID, grant.Email, grant.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateResetGrant(context.Background(), grant))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateResetGrant_StoreUnavailable(t *testing.T) {
	repo, mock := newTestResetGrantRepo(t)

	mock.ExpectExec("INSERT INTO password_reset_grants").
		WillReturnError(pgError(pgerrcode.ConnectionDoesNotExist))

	err := repo.CreateResetGrant(context.Background(), models.ResetGrant{ID: "grant-1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestConsumeResetGrant(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(5 * time.Minute)

	t.Run("consumed", func(t *testing.T) {
		repo, mock := newTestResetGrantRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM password_reset_grants")).
			WithArgs("grant-1", "alice@example.com", now).
			WillReturnRows(sqlmock.NewRows([]string{"grant_id", "email", "expires_at"}).
				AddRow("grant-1", "alice@example.com", expires))

		grant, err := repo.ConsumeResetGrant(context.Background(), "grant-1", "alice@example.com", now)
		require.NoError(t, err)
		assert.Equal(t, "grant-1", grant.ID)
		assert.Equal(t, "alice@example.com", grant.Email)
		assert.True(t, grant.ExpiresAt.Equal(expires))
	})

	t.Run("already consumed", func(t *testing.T) {
		repo, mock := newTestResetGrantRepo(t)

		mock.ExpectQuery("DELETE FROM password_reset_grants").
			WithArgs("grant-1", "alice@example.com", now).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.ConsumeResetGrant(context.Background(), "grant-1", "alice@example.com", now)
		assert.ErrorIs(t, err, ErrResetGrantNotFound)
	})
}

func TestDeleteExpiredResetGrants(t *testing.T) {
	repo, mock := newTestResetGrantRepo(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM password_reset_grants WHERE expires_at <= $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteExpiredResetGrants(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
