package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	CookieName = "admin_session"
	TTL        = 24 * time.Hour

	keyPrefix = "admin:session:"
)

// Store keeps admin sessions in Redis so logout revokes them
// server-side.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, "1", TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
