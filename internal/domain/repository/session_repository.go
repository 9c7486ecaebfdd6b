package repository

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/common"
	"inkwell/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores bearer token records. Lookup is by exact token
// string; the stored expiry is not checked on resolve and no key TTL is set,
// so a token stays valid until logout.
type SessionRepository interface {
	Save(ctx context.Context, session *model.Session) error
	Find(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{rdb: rdb}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *redisSessionRepository) Save(ctx context.Context, session *model.Session) error {
	err := r.rdb.HSet(ctx, sessionKey(session.Token),
		"user_id", session.UserID,
		"created_at", session.CreatedAt.Format(time.RFC3339),
		"expired_at", session.ExpiredAt.Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("redisSessionRepository.Save: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Find(ctx context.Context, token string) (*model.Session, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("redisSessionRepository.Find: %w", err)
	}
	if len(fields) == 0 {
		return nil, common.ErrNotFound
	}

	session := &model.Session{
		UserID: fields["user_id"],
		Token:  token,
	}
	if createdAt, err := time.Parse(time.RFC3339, fields["created_at"]); err == nil {
		session.CreatedAt = createdAt
	}
	if expiredAt, err := time.Parse(time.RFC3339, fields["expired_at"]); err == nil {
		session.ExpiredAt = expiredAt
	}
	return session, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	deleted, err := r.rdb.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return fmt.Errorf("redisSessionRepository.Delete: %w", err)
	}
	if deleted == 0 {
		return common.ErrNotFound
	}
	return nil
}
