package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/memberportal/internal/models"
)

var testIdentity = models.Identity{MemberID: "MEM123456", DateOfBirth: "1990-05-20", Mobile: "9876543210"}

type recordingSender struct {
	codes []string
}

func (s *recordingSender) Send(_ context.Context, _ models.Identity, code string) error {
	s.codes = append(s.codes, code)
	return nil
}

func newLocalGateway(codes CodeSource, opts ...LocalGatewayOption) (*LocalGateway, *recordingSender) {
	sender := &recordingSender{}
	opts = append([]LocalGatewayOption{WithSender(sender), WithHashCost(bcrypt.MinCost)}, opts...)
	return NewLocalGateway(codes, NewMemoryChallengeStore(), time.Minute, opts...), sender
}

func TestLocalGateway_FixedCode(t *testing.T) {
	g, sender := newLocalGateway(FixedCode("123456"))
	ctx := context.Background()

	require.NoError(t, g.Issue(ctx, testIdentity))
	assert.Equal(t, []string{"123456"}, sender.codes)

	assert.ErrorIs(t, g.Validate(ctx, testIdentity.MemberID, "000000"), ErrInvalidOTP)
	require.NoError(t, g.Validate(ctx, testIdentity.MemberID, "123456"))

	// single use
	assert.ErrorIs(t, g.Validate(ctx, testIdentity.MemberID, "123456"), ErrOTPExpired)
}

func TestLocalGateway_ReissueReplacesCode(t *testing.T) {
	g, sender := newLocalGateway(RandomCode(6))
	ctx := context.Background()

	require.NoError(t, g.Issue(ctx, testIdentity))
	require.NoError(t, g.Issue(ctx, testIdentity))
	require.Len(t, sender.codes, 2)
	for _, c := range sender.codes {
		assert.Regexp(t, `^\d{6}$`, c)
	}

	if sender.codes[0] != sender.codes[1] {
		assert.ErrorIs(t, g.Validate(ctx, testIdentity.MemberID, sender.codes[0]), ErrInvalidOTP)
	}
	assert.NoError(t, g.Validate(ctx, testIdentity.MemberID, sender.codes[1]))
}

func TestLocalGateway_IdentityCheck(t *testing.T) {
	e := newTestEnroller(t)
	g, sender := newLocalGateway(FixedCode("123456"), WithIdentityCheck(e))

	err := g.Issue(context.Background(), testIdentity)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
	assert.Empty(t, sender.codes)
}

// validateConcurrently runs n validations of code at once and returns how many succeeded.
func validateConcurrently(g *LocalGateway, memberID, code string, n int) int {
	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
	)
	start := make(chan struct{})
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if g.Validate(context.Background(), memberID, code) == nil {
				accepted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	return int(accepted.Load())
}

func TestLocalGateway_ConcurrentValidateIsSingleUse(t *testing.T) {
	g, _ := newLocalGateway(FixedCode("123456"))
	require.NoError(t, g.Issue(context.Background(), testIdentity))

	assert.Equal(t, 1, validateConcurrently(g, testIdentity.MemberID, "123456", 8))
	assert.ErrorIs(t, g.Validate(context.Background(), testIdentity.MemberID, "123456"), ErrOTPExpired)
}

func TestMemoryChallengeStore_Expiry(t *testing.T) {
	s := NewMemoryChallengeStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "MEM1", []byte("h"), time.Minute))
	got, left, err := s.Take(ctx, "MEM1")
	require.NoError(t, err)
	assert.Equal(t, []byte("h"), got)
	assert.Equal(t, time.Minute, left)

	require.NoError(t, s.Restore(ctx, "MEM1", got, left))
	now = now.Add(2 * time.Minute)
	_, _, err = s.Take(ctx, "MEM1")
	assert.ErrorIs(t, err, ErrNoChallenge)
}

func TestMemoryChallengeStore_TakeOnce(t *testing.T) {
	s := NewMemoryChallengeStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "MEM1", []byte("h"), time.Minute))
	_, _, err := s.Take(ctx, "MEM1")
	require.NoError(t, err)
	_, _, err = s.Take(ctx, "MEM1")
	assert.ErrorIs(t, err, ErrNoChallenge)
}

func TestMemoryChallengeStore_RestoreKeepsNewerChallenge(t *testing.T) {
	s := NewMemoryChallengeStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "MEM1", []byte("newer"), time.Minute))
	require.NoError(t, s.Restore(ctx, "MEM1", []byte("older"), time.Minute))

	got, _, err := s.Take(ctx, "MEM1")
	require.NoError(t, err)
	assert.Equal(t, []byte("newer"), got)
}

func TestHTTPGateway(t *testing.T) {
	var gotGenerate GenerateOTPRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+GenerateOTPPath, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotGenerate))
		if gotGenerate.MemberID == "MEM000000" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(StatusResponse{Message: "Member not found"})
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST "+ValidateOTPPath, func(w http.ResponseWriter, r *http.Request) {
		var req ValidateOTPRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		switch req.OTP {
		case "123456":
			w.WriteHeader(http.StatusOK)
		case "999999":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewHTTPGateway(srv.URL+"/", time.Second)
	ctx := context.Background()

	t.Run("issue sends identity", func(t *testing.T) {
		require.NoError(t, g.Issue(ctx, testIdentity))
		assert.Equal(t, GenerateOTPRequest{MemberID: "MEM123456", DateOfBirth: "1990-05-20", ContactNo: "9876543210"}, gotGenerate)
	})

	t.Run("issue failure carries server message", func(t *testing.T) {
		id := testIdentity
		id.MemberID = "MEM000000"
		err := g.Issue(ctx, id)
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusNotFound, upstream.Status)
		assert.Equal(t, "Member not found", upstream.Message)
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, g.Validate(ctx, "MEM123456", "123456"))

		err := g.Validate(ctx, "MEM123456", "000000")
		assert.ErrorIs(t, err, ErrInvalidOTP)
		assert.EqualError(t, err, MsgInvalidOTP)

		err = g.Validate(ctx, "MEM123456", "999999")
		assert.ErrorIs(t, err, ErrUpstream)
		assert.NotErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("unreachable", func(t *testing.T) {
		down := NewHTTPGateway("http://127.0.0.1:1", 200*time.Millisecond)
		err := down.Issue(ctx, testIdentity)
		assert.ErrorIs(t, err, ErrUpstream)
		assert.EqualError(t, err, MsgIssueFailed)
	})
}
