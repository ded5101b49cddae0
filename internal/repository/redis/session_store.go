package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type sessionStore struct {
	client *goredis.Client
}

func NewSessionStore(client *goredis.Client) repository.SessionStore {
	return &sessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return fmt.Sprintf("session:%s", tokenHash)
}

func (s *sessionStore) Save(ctx context.Context, tokenHash string, userID int, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(tokenHash), userID, ttl).Err()
}

func (s *sessionStore) GetUserID(ctx context.Context, tokenHash string) (int, error) {
	userID, err := s.client.Get(ctx, sessionKey(tokenHash)).Int()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, err
	}
	return userID, nil
}

func (s *sessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, sessionKey(tokenHash)).Err()
}
