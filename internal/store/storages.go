package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
)

// Storages groups every persistence component the services depend on.
type Storages struct {
	UserRepository       UserRepository
	ResetCodeRepository  ResetCodeRepository
	ResetGrantRepository ResetGrantRepository
	CourseRepository     CourseRepository
	OAuthStateStore      OAuthStateStore

	// DB answers health checks.
	DB Pinger

	closers []func() error
}

// NewStorages connects to PostgreSQL, applies migrations and builds all
// repositories. When cfg.Redis.Address is set OAuth states are kept in
// Redis, otherwise in memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := NewStoragesFromDB(db, log)

	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.OAuthStateStore = NewRedisOAuthStateStore(client, cfg.OAuthState.TTL)
		storages.closers = append(storages.closers, client.Close)
	} else {
		storages.OAuthStateStore = NewMemoryOAuthStateStore(cfg.OAuthState.TTL, cfg.OAuthState.Capacity)
	}

	return storages, nil
}

// NewStoragesFromDB builds the SQL repositories over an existing connection.
// OAuthStateStore is left for the caller to set.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ResetCodeRepository:  NewResetCodeRepository(db, log),
		ResetGrantRepository: NewResetGrantRepository(db, log),
		CourseRepository:     NewCourseRepository(db, log),
		DB:                   db,
		closers:              []func() error{db.Close},
	}
}

// Close releases every underlying connection.
func (s *Storages) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
