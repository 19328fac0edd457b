package profile

import (
	"fmt"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/validation"
)

// Contact field names accepted by ContactEditor.Set.
const (
	FieldMobileNumber     = "mobileNumber"
	FieldCountryCode      = "countryCode"
	FieldEmail            = "email"
	FieldPreferredContact = "preferredContact"
)

// ContactEditor edits the single ContactInfo of a profile.
//
// Begin snapshots the committed value into a draft. Save is only allowed once the draft
// differs from the snapshot, and Cancel restores the committed value untouched.
// The verified flag is a format check on the mobile number; it never leaves the process.
type ContactEditor struct {
	value    models.ContactInfo
	draft    *models.ContactInfo
	verified bool
	errs     validation.Errors
	onChange func(models.ContactInfo)
}

// NewContactEditor returns an editor over value.
func NewContactEditor(value models.ContactInfo, onChange func(models.ContactInfo)) *ContactEditor {
	return &ContactEditor{value: value, onChange: onChange}
}

// Value returns the committed contact info.
func (e *ContactEditor) Value() models.ContactInfo {
	return e.value
}

// Draft returns the edit buffer and whether edit mode is on.
func (e *ContactEditor) Draft() (models.ContactInfo, bool) {
	if e.draft == nil {
		return models.ContactInfo{}, false
	}
	return *e.draft, true
}

// Editing reports whether edit mode is on.
func (e *ContactEditor) Editing() bool {
	return e.draft != nil
}

// Begin enters edit mode. Calling it again while editing keeps the current draft.
func (e *ContactEditor) Begin() {
	if e.draft != nil {
		return
	}
	draft := e.value
	e.draft = &draft
	e.errs = nil
}

// Set changes one field of the draft. Editing the mobile number clears the verified flag.
func (e *ContactEditor) Set(field, value string) error {
	if e.draft == nil {
		return ErrNotEditing
	}
	switch field {
	case FieldMobileNumber:
		e.draft.MobileNumber = value
		e.verified = false
	case FieldCountryCode:
		e.draft.CountryCode = value
	case FieldEmail:
		e.draft.Email = value
	case FieldPreferredContact:
		e.draft.PreferredContact = models.PreferredContact(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// HasChanges reports whether the draft differs from the committed value.
func (e *ContactEditor) HasChanges() bool {
	return e.draft != nil && *e.draft != e.value
}

// VerifyMobile checks the format of the mobile number being edited (or the committed
// one outside edit mode) and marks it verified when it passes.
func (e *ContactEditor) VerifyMobile() error {
	mobile := e.value.MobileNumber
	if e.draft != nil {
		mobile = e.draft.MobileNumber
	}
	if msg := validation.Mobile(mobile); msg != "" {
		e.verified = false
		return validation.Errors{FieldMobileNumber: msg}
	}
	e.verified = true
	return nil
}

// Verified reports whether the current mobile number passed VerifyMobile.
func (e *ContactEditor) Verified() bool {
	return e.verified
}

// Errors returns the field errors from the last failed save.
func (e *ContactEditor) Errors() validation.Errors {
	return e.errs
}

// Save validates and commits the draft, leaving edit mode.
func (e *ContactEditor) Save() (models.ContactInfo, error) {
	if e.draft == nil {
		return e.value, ErrNotEditing
	}
	if !e.HasChanges() {
		return e.value, ErrNoChanges
	}
	if err := validation.Contact(*e.draft); err != nil {
		e.errs, _ = err.(validation.Errors)
		return e.value, err
	}

	e.value = *e.draft
	e.draft = nil
	e.errs = nil
	if e.onChange != nil {
		e.onChange(e.value)
	}
	return e.value, nil
}

// Cancel leaves edit mode and discards the draft.
func (e *ContactEditor) Cancel() {
	if e.draft != nil && e.draft.MobileNumber != e.value.MobileNumber {
		e.verified = false
	}
	e.draft = nil
	e.errs = nil
}
