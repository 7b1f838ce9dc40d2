package session

import (
	"context"
	"encoding/json"
	"time"

	"vinyl/config"
	"vinyl/internal/domain/entity"
	"vinyl/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "user_session:"

	defaultIdleTimeout = 30 * time.Minute
)

// redisStore implements repository.SessionStore on Redis. Besides the
// session record itself it keeps a user->session index so that issuing a
// new session can destroy the user's previous one in the same operation.
type redisStore struct {
	client      *redis.Client
	idleTimeout time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, cfg *config.Config) repository.SessionStore {
	idleTimeout := defaultIdleTimeout
	if cfg != nil && cfg.Session != nil && cfg.Session.IdleTimeout > 0 {
		idleTimeout = cfg.Session.IdleTimeout
	}

	return &redisStore{
		client:      client,
		idleTimeout: idleTimeout,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func userIndexKey(userID uuid.UUID) string {
	return userIndexPrefix + userID.String()
}

// Create persists a new session and destroys any previous session belonging
// to the same user. The previous-session teardown is part of this operation,
// not an afterthought: a login either yields exactly one live session for
// the user or fails.
func (s *redisStore) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == "" || session.UserID == uuid.Nil {
		return errors.New("session is missing id or user id")
	}

	// Swap the user index first; GETDEL returns the previous session ID.
	previousID, err := s.client.GetDel(ctx, userIndexKey(session.UserID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrap(err, "failed to read user session index")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	pipe := s.client.TxPipeline()
	if previousID != "" {
		pipe.Del(ctx, sessionKey(previousID))
	}
	pipe.Set(ctx, sessionKey(session.ID), data, s.idleTimeout)
	pipe.Set(ctx, userIndexKey(session.UserID), session.ID, s.idleTimeout)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

// Get retrieves a live session by ID.
func (s *redisStore) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &session, nil
}

// Touch refreshes the idle expiry and persists the updated last-seen timestamp.
func (s *redisStore) Touch(ctx context.Context, session *entity.Session) error {
	session.LastSeenAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, s.idleTimeout)
	pipe.Expire(ctx, userIndexKey(session.UserID), s.idleTimeout)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to refresh session")
	}

	return nil
}

// Delete destroys a session by ID, clearing the user index when it still
// points at this session. Deleting an absent session is a no-op.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	session, err := s.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.Del(ctx, userIndexKey(session.UserID))

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteByUserID destroys the live session of the given user, if any.
func (s *redisStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	sessionID, err := s.client.GetDel(ctx, userIndexKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read user session index")
	}

	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
