package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoragesFromDB(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	storages := NewStoragesFromDB(NewDB(conn, logger.Nop()), logger.Nop())

	assert.NotNil(t, storages.UserRepository)
	assert.NotNil(t, storages.ResetCodeRepository)
	assert.NotNil(t, storages.ResetGrantRepository)
	assert.NotNil(t, storages.CourseRepository)
	assert.Nil(t, storages.OAuthStateStore)

	mock.ExpectPing()
	assert.NoError(t, storages.DB.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.ErrorIs(t, storages.DB.Ping(context.Background()), ErrStoreUnavailable)

	mock.ExpectClose()
	assert.NoError(t, storages.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
