package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for OTP challenges
const challengeKeyPrefix = "otp:challenge:"

// RedisChallengeStore keeps challenges in Redis so every server instance sees them.
// Expiry is left to Redis key TTLs.
type RedisChallengeStore struct {
	client *redis.Client
}

// NewRedisChallengeStore wraps client. The client lifecycle is managed by the caller.
func NewRedisChallengeStore(client *redis.Client) *RedisChallengeStore {
	return &RedisChallengeStore{client: client}
}

func (s *RedisChallengeStore) Put(ctx context.Context, memberID string, hash []byte, ttl time.Duration) error {
	return s.client.Set(ctx, challengeKeyPrefix+memberID, hash, ttl).Err()
}

// Take reads and deletes the key inside one MULTI so concurrent instances cannot both see it.
func (s *RedisChallengeStore) Take(ctx context.Context, memberID string) ([]byte, time.Duration, error) {
	key := challengeKeyPrefix + memberID

	var (
		get *redis.StringCmd
		ttl *redis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		ttl = pipe.PTTL(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, 0, ErrNoChallenge
	}
	if err != nil {
		return nil, 0, err
	}
	hash, err := get.Bytes()
	if err != nil {
		return nil, 0, err
	}
	return hash, ttl.Val(), nil
}

// Restore uses SET NX so a challenge issued after the Take is kept.
func (s *RedisChallengeStore) Restore(ctx context.Context, memberID string, hash []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.SetNX(ctx, challengeKeyPrefix+memberID, hash, ttl).Err()
}

func (s *RedisChallengeStore) Delete(ctx context.Context, memberID string) error {
	return s.client.Del(ctx, challengeKeyPrefix+memberID).Err()
}
