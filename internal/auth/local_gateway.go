package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/memberportal/internal/models"
)

// CodeSource produces the code for a new challenge.
type CodeSource func() (string, error)

// FixedCode always issues code. Useful for demos and tests.
func FixedCode(code string) CodeSource {
	return func() (string, error) { return code, nil }
}

// RandomCode issues codes of the given number of decimal digits.
func RandomCode(digits int) CodeSource {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	return func() (string, error) {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		return fmt.Sprintf("%0*d", digits, n.Int64()), nil
	}
}

// Sender delivers an issued code to the member.
type Sender interface {
	Send(ctx context.Context, id models.Identity, code string) error
}

// LogSender writes issued codes to the log instead of sending them.
type LogSender struct {
	Logger *slog.Logger
}

// Send logs the code with a masked mobile number.
func (s LogSender) Send(ctx context.Context, id models.Identity, code string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "OTP issued", "member_id", id.MemberID, "mobile", maskMobile(id.Mobile), "otp", code)
	return nil
}

func maskMobile(m string) string {
	if len(m) <= 4 {
		return m
	}
	return strings.Repeat("*", len(m)-4) + m[len(m)-4:]
}

// LocalGateway issues and checks codes in-process.
// Only a bcrypt hash of each code is stored, and a code can be used once.
type LocalGateway struct {
	codes   CodeSource
	store   ChallengeStore
	sender  Sender
	matcher *Enroller
	ttl     time.Duration
	cost    int
}

// LocalGatewayOption configures a LocalGateway.
type LocalGatewayOption func(*LocalGateway)

// WithIdentityCheck requires the identity to match a member in the directory before a code is issued.
func WithIdentityCheck(e *Enroller) LocalGatewayOption {
	return func(g *LocalGateway) { g.matcher = e }
}

// WithSender replaces the default log sender.
func WithSender(s Sender) LocalGatewayOption {
	return func(g *LocalGateway) { g.sender = s }
}

// WithHashCost sets the bcrypt cost used for stored codes.
func WithHashCost(cost int) LocalGatewayOption {
	return func(g *LocalGateway) { g.cost = cost }
}

// NewLocalGateway creates a gateway whose codes expire after ttl.
func NewLocalGateway(codes CodeSource, store ChallengeStore, ttl time.Duration, opts ...LocalGatewayOption) *LocalGateway {
	g := &LocalGateway{
		codes:  codes,
		store:  store,
		sender: LogSender{},
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Issue creates a challenge for the member, replacing any earlier one, and delivers the code.
func (g *LocalGateway) Issue(ctx context.Context, id models.Identity) error {
	if g.matcher != nil {
		if _, err := g.matcher.Match(ctx, id); err != nil {
			return err
		}
	}

	code, err := g.codes()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), g.cost)
	if err != nil {
		return fmt.Errorf("failed to hash code: %w", err)
	}
	if err := g.store.Put(ctx, id.MemberID, hash, g.ttl); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	if err := g.sender.Send(ctx, id, code); err != nil {
		_ = g.store.Delete(ctx, id.MemberID)
		return fmt.Errorf("failed to deliver code: %w", err)
	}
	return nil
}

// Validate checks code against the member's open challenge and consumes it on success.
// The challenge is taken before comparing, so a code is accepted at most once even
// when validations race. A wrong code puts the challenge back.
func (g *LocalGateway) Validate(ctx context.Context, memberID, code string) error {
	hash, left, err := g.store.Take(ctx, memberID)
	if errors.Is(err, ErrNoChallenge) {
		return ErrOTPExpired
	}
	if err != nil {
		return fmt.Errorf("failed to load challenge: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(code)); err != nil {
		if err := g.store.Restore(ctx, memberID, hash, left); err != nil {
			return fmt.Errorf("failed to restore challenge: %w", err)
		}
		return ErrInvalidOTP
	}
	return nil
}
