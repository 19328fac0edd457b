package auth

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/storage/sqlite"
	"github.com/mmynk/memberportal/internal/validation"
)

func newTestEnroller(t *testing.T) *Enroller {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "members.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	e := NewEnroller(store)
	e.now = func() time.Time { return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func signupForm() models.SignupForm {
	return models.SignupForm{
		FullName:    "  Jane Doe ",
		DateOfBirth: "1990-05-20",
		Email:       "jane@example.com",
		Mobile:      "9876543210",
	}
}

func TestEnroller_Signup(t *testing.T) {
	e := newTestEnroller(t)
	ctx := context.Background()

	m, err := e.Signup(ctx, signupForm())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^MEM\d{6}$`), m.MemberID)
	assert.Equal(t, "Jane Doe", m.FullName)

	got, err := e.Lookup(ctx, m.MemberID)
	require.NoError(t, err)
	assert.Equal(t, m.Email, got.Email)

	_, err = e.Signup(ctx, signupForm())
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestEnroller_SignupValidation(t *testing.T) {
	e := newTestEnroller(t)

	form := signupForm()
	form.DateOfBirth = "2010-01-01"
	form.Mobile = "123"

	_, err := e.Signup(context.Background(), form)
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, validation.MsgDOBUnderage, errs["dateOfBirth"])
	assert.Contains(t, errs, "mobile")
}

func TestEnroller_Match(t *testing.T) {
	e := newTestEnroller(t)
	ctx := context.Background()
	m, err := e.Signup(ctx, signupForm())
	require.NoError(t, err)

	got, err := e.Match(ctx, models.Identity{MemberID: m.MemberID, DateOfBirth: "1990-05-20", Mobile: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, m.MemberID, got.MemberID)

	_, err = e.Match(ctx, models.Identity{MemberID: m.MemberID, DateOfBirth: "1990-05-21", Mobile: "9876543210"})
	assert.ErrorIs(t, err, ErrIdentityMismatch)

	_, err = e.Match(ctx, models.Identity{MemberID: "MEM000000", DateOfBirth: "1990-05-20", Mobile: "9876543210"})
	assert.ErrorIs(t, err, ErrIdentityMismatch)

	unknown, err := e.Lookup(ctx, "MEM000000")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}
