//go:build integration

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

type RedisChallengeStoreSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	store     *RedisChallengeStore
}

func TestRedisChallengeStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisChallengeStoreSuite))
}

func (s *RedisChallengeStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	addr, err := container.ConnectionString(ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(addr)
	s.Require().NoError(err)

	s.client = redis.NewClient(opts)
	s.Require().NoError(s.client.Ping(ctx).Err())
	s.store = NewRedisChallengeStore(s.client)
}

func (s *RedisChallengeStoreSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *RedisChallengeStoreSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *RedisChallengeStoreSuite) TestPutTakeRestore() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "MEM123456", []byte("hash"), time.Minute))
	got, left, err := s.store.Take(ctx, "MEM123456")
	s.Require().NoError(err)
	s.Equal([]byte("hash"), got)
	s.Greater(left, 50*time.Second)

	_, _, err = s.store.Take(ctx, "MEM123456")
	s.ErrorIs(err, ErrNoChallenge)

	s.Require().NoError(s.store.Restore(ctx, "MEM123456", got, left))
	got, _, err = s.store.Take(ctx, "MEM123456")
	s.Require().NoError(err)
	s.Equal([]byte("hash"), got)
}

func (s *RedisChallengeStoreSuite) TestRestoreKeepsNewerChallenge() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "MEM123456", []byte("newer"), time.Minute))
	s.Require().NoError(s.store.Restore(ctx, "MEM123456", []byte("older"), time.Minute))

	got, _, err := s.store.Take(ctx, "MEM123456")
	s.Require().NoError(err)
	s.Equal([]byte("newer"), got)
}

func (s *RedisChallengeStoreSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "MEM123456", []byte("hash"), time.Minute))
	s.Require().NoError(s.store.Delete(ctx, "MEM123456"))
	_, _, err := s.store.Take(ctx, "MEM123456")
	s.ErrorIs(err, ErrNoChallenge)
}

func (s *RedisChallengeStoreSuite) TestExpiry() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "MEM123456", []byte("hash"), 50*time.Millisecond))
	s.Eventually(func() bool {
		return s.client.Exists(ctx, challengeKeyPrefix+"MEM123456").Val() == 0
	}, 2*time.Second, 20*time.Millisecond)
	_, _, err := s.store.Take(ctx, "MEM123456")
	s.ErrorIs(err, ErrNoChallenge)
}

func (s *RedisChallengeStoreSuite) TestLocalGatewayOverRedis() {
	ctx := context.Background()
	g := NewLocalGateway(FixedCode("123456"), s.store, time.Minute,
		WithSender(&recordingSender{}), WithHashCost(bcrypt.MinCost))

	s.Require().NoError(g.Issue(ctx, testIdentity))
	s.ErrorIs(g.Validate(ctx, testIdentity.MemberID, "000000"), ErrInvalidOTP)
	s.NoError(g.Validate(ctx, testIdentity.MemberID, "123456"))
	s.ErrorIs(g.Validate(ctx, testIdentity.MemberID, "123456"), ErrOTPExpired)
}

func (s *RedisChallengeStoreSuite) TestLocalGatewayConcurrentValidate() {
	ctx := context.Background()
	g := NewLocalGateway(FixedCode("123456"), s.store, time.Minute,
		WithSender(&recordingSender{}), WithHashCost(bcrypt.MinCost))
	s.Require().NoError(g.Issue(ctx, testIdentity))

	s.Equal(1, validateConcurrently(g, testIdentity.MemberID, "123456", 8))
}
