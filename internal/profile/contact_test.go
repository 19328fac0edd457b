package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/validation"
)

func committedContact() models.ContactInfo {
	return models.ContactInfo{
		MobileNumber:     "9876543210",
		CountryCode:      "+91",
		Email:            "jane@example.com",
		PreferredContact: models.PreferMobile,
	}
}

func TestContactEditor_CancelRestores(t *testing.T) {
	e := NewContactEditor(committedContact(), nil)

	e.Begin()
	require.NoError(t, e.Set(FieldEmail, "other@example.com"))
	assert.True(t, e.HasChanges())

	e.Cancel()
	assert.Equal(t, committedContact(), e.Value())
	assert.False(t, e.Editing())
}

func TestContactEditor_SaveRequiresChanges(t *testing.T) {
	var saved []models.ContactInfo
	e := NewContactEditor(committedContact(), func(c models.ContactInfo) { saved = append(saved, c) })

	_, err := e.Save()
	assert.ErrorIs(t, err, ErrNotEditing)

	e.Begin()
	_, err = e.Save()
	assert.ErrorIs(t, err, ErrNoChanges)

	require.NoError(t, e.Set(FieldEmail, "x@example.com"))
	require.NoError(t, e.Set(FieldEmail, "jane@example.com"))
	assert.False(t, e.HasChanges(), "reverting a field clears the change")

	require.NoError(t, e.Set(FieldPreferredContact, "email"))
	got, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, models.PreferEmail, got.PreferredContact)
	require.Len(t, saved, 1)
	assert.False(t, e.Editing())
}

func TestContactEditor_SaveValidates(t *testing.T) {
	e := NewContactEditor(committedContact(), nil)
	e.Begin()
	require.NoError(t, e.Set(FieldMobileNumber, "0123456789"))

	_, err := e.Save()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, validation.MsgMobile, e.Errors()[FieldMobileNumber])
	assert.Equal(t, committedContact(), e.Value())
	assert.True(t, e.Editing())
}

func TestContactEditor_VerifyMobile(t *testing.T) {
	e := NewContactEditor(committedContact(), nil)
	e.Begin()

	require.NoError(t, e.VerifyMobile())
	assert.True(t, e.Verified())

	require.NoError(t, e.Set(FieldMobileNumber, "9123456780"))
	assert.False(t, e.Verified(), "editing the number resets verification")

	require.NoError(t, e.Set(FieldMobileNumber, "12345"))
	err := e.VerifyMobile()
	require.Error(t, err)
	assert.False(t, e.Verified())
}

func TestContactEditor_UnknownField(t *testing.T) {
	e := NewContactEditor(committedContact(), nil)
	assert.ErrorIs(t, e.Set(FieldEmail, "a@b.co"), ErrNotEditing)

	e.Begin()
	assert.ErrorIs(t, e.Set("fax", "123"), ErrUnknownField)
}
