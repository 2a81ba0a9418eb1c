package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AdarCosmetics/salon-scheduler/internal/validators"
)

const keyPrefix = "verified_session:"

// RedisStore persists verified sessions in Redis; the TTL is enforced by key
// expiry, so expired sessions simply disappear.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisStore) key(phone string) string {
	return keyPrefix + validators.PhoneDigits(phone)
}

func (s *RedisStore) Get(ctx context.Context, phone string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, s.key(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, phone string) error {
	now := time.Now()
	sess := Session{
		Phone:      validators.PhoneDigits(phone),
		VerifiedAt: now,
		ExpiresAt:  now.Add(TTL),
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(phone), raw, TTL).Err()
}

func (s *RedisStore) Clear(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, s.key(phone)).Err()
}

var _ Store = (*RedisStore)(nil)
