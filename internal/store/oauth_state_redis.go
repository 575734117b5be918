package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/models"
	"github.com/redis/go-redis/v9"
)

const (
	oauthStateKeyPrefix = "oauth_state:"
	oauthClaimKeyPrefix = "oauth_state_claim:"
)

// redisOAuthStateStore keeps OAuth states in Redis under
// "oauth_state:<state>" and their claims under "oauth_state_claim:<state>".
// Expiry is Redis' own key TTL.
type redisOAuthStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisOAuthStateStore returns a Redis-backed [OAuthStateStore].
func NewRedisOAuthStateStore(client *redis.Client, ttl time.Duration) OAuthStateStore {
	return &redisOAuthStateStore{client: client, ttl: ttl}
}

func (s *redisOAuthStateStore) Put(ctx context.Context, status models.OAuthStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("error encoding oauth state: %w", err)
	}

	if err := s.client.Set(ctx, oauthStateKeyPrefix+status.State, payload, s.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisOAuthStateStore.Put").Msg("error writing oauth state")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *redisOAuthStateStore) Get(ctx context.Context, state string) (models.OAuthStatus, error) {
	payload, err := s.client.Get(ctx, oauthStateKeyPrefix+state).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.OAuthStatus{}, ErrOAuthStateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisOAuthStateStore.Get").Msg("error reading oauth state")
		return models.OAuthStatus{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var status models.OAuthStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return models.OAuthStatus{}, fmt.Errorf("error decoding oauth state: %w", err)
	}

	return status, nil
}

func (s *redisOAuthStateStore) Claim(ctx context.Context, state string) (bool, error) {
	status, err := s.Get(ctx, state)
	if err != nil {
		return false, err
	}
	if status.Status != models.OAuthStatePending {
		return false, nil
	}

	// SETNX: побеждает только первый обработчик callback'а
	ok, err := s.client.SetNX(ctx, oauthClaimKeyPrefix+state, 1, s.ttl).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisOAuthStateStore.Claim").Msg("error claiming oauth state")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return ok, nil
}

// Evict is a no-op: Redis expires keys itself.
func (s *redisOAuthStateStore) Evict(context.Context, time.Time) int {
	return 0
}
