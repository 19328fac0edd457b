package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/storage"
	"github.com/mmynk/memberportal/internal/validation"
)

var (
	ErrEmailExists      = errors.New("email already registered")
	ErrIdentityMismatch = errors.New("member details do not match our records")
)

// MemberIDPrefix starts every generated member id.
const MemberIDPrefix = "MEM"

const memberIDAttempts = 5

// Directory is the subset of the member store the auth flow needs.
// This allows the enroller to be independent of the storage implementation.
type Directory interface {
	CreateMember(ctx context.Context, member *models.Member) error
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)
}

// Enroller signs members up and checks login identities against the directory.
type Enroller struct {
	dir Directory
	now func() time.Time
}

// NewEnroller creates an enroller backed by dir.
func NewEnroller(dir Directory) *Enroller {
	return &Enroller{dir: dir, now: time.Now}
}

// Signup validates the form and creates a member with a fresh id.
func (e *Enroller) Signup(ctx context.Context, form models.SignupForm) (*models.Member, error) {
	if err := validation.Signup(form, e.now()); err != nil {
		return nil, err
	}

	// Check if email already exists
	_, err := e.dir.GetMemberByEmail(ctx, form.Email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	member := &models.Member{
		FullName:    strings.TrimSpace(form.FullName),
		DateOfBirth: form.DateOfBirth,
		Email:       form.Email,
		Mobile:      form.Mobile,
		CreatedAt:   e.now().Unix(),
	}
	for i := 0; i < memberIDAttempts; i++ {
		member.MemberID, err = newMemberID()
		if err != nil {
			return nil, err
		}
		err = e.dir.CreateMember(ctx, member)
		if !errors.Is(err, storage.ErrMemberExists) {
			break
		}
	}
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		return nil, ErrEmailExists
	case err != nil:
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// Lookup returns the member with the given id, or nil when the directory doesn't know it.
func (e *Enroller) Lookup(ctx context.Context, memberID string) (*models.Member, error) {
	m, err := e.dir.GetMember(ctx, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}
	return m, nil
}

// Match checks that the login identity belongs to a known member.
// Unknown ids and mismatching details return the same error.
func (e *Enroller) Match(ctx context.Context, id models.Identity) (*models.Member, error) {
	m, err := e.Lookup(ctx, id.MemberID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.DateOfBirth != id.DateOfBirth || m.Mobile != id.Mobile {
		return nil, ErrIdentityMismatch
	}
	return m, nil
}

// newMemberID returns MemberIDPrefix followed by six random digits.
func newMemberID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate member id: %w", err)
	}
	return fmt.Sprintf("%s%06d", MemberIDPrefix, n.Int64()), nil
}
