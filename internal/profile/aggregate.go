// Package profile holds a member's profile while it is being edited.
//
// An Aggregate owns the profile and the active tab. Each tab has one editor that
// mutates its slice of the profile and reports every committed change back through a
// callback, so the aggregate always holds the latest saved state. Drafts belong to the
// editor of the active tab and are dropped when another tab is selected.
package profile

import (
	"fmt"

	"github.com/mmynk/memberportal/internal/models"
)

// Tab is a section of the profile page.
type Tab string

const (
	TabContact    Tab = "contact"
	TabPayment    Tab = "payment"
	TabAddress    Tab = "address"
	TabHealth     Tab = "health"
	TabDependents Tab = "dependents"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabContact, TabPayment, TabAddress, TabHealth, TabDependents}

// ParseTab returns the tab named s.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Aggregate is one member's profile plus the editor of the active tab.
// It is not safe for concurrent use; Registry serializes access per member.
type Aggregate struct {
	profile models.Profile
	tab     Tab

	contact    *ContactEditor
	payments   *ListEditor[models.PaymentMethod]
	addresses  *ListEditor[models.Address]
	health     *HealthEditor
	dependents *DependentEditor
}

// New returns an aggregate over p with the contact tab active.
func New(p models.Profile) *Aggregate {
	a := &Aggregate{profile: p.Clone()}
	a.show(TabContact)
	return a
}

// Profile returns a copy of the committed profile.
func (a *Aggregate) Profile() models.Profile {
	return a.profile.Clone()
}

// Tab returns the active tab.
func (a *Aggregate) Tab() Tab {
	return a.tab
}

// SelectTab activates t. Selecting the active tab again keeps its drafts.
func (a *Aggregate) SelectTab(t Tab) error {
	if _, err := ParseTab(string(t)); err != nil {
		return err
	}
	a.show(t)
	return nil
}

// Contact activates the contact tab and returns its editor.
func (a *Aggregate) Contact() *ContactEditor {
	a.show(TabContact)
	return a.contact
}

// PaymentMethods activates the payment tab and returns its editor.
func (a *Aggregate) PaymentMethods() *ListEditor[models.PaymentMethod] {
	a.show(TabPayment)
	return a.payments
}

// Addresses activates the address tab and returns its editor.
func (a *Aggregate) Addresses() *ListEditor[models.Address] {
	a.show(TabAddress)
	return a.addresses
}

// Health activates the health tab and returns its editor.
func (a *Aggregate) Health() *HealthEditor {
	a.show(TabHealth)
	return a.health
}

// Dependents activates the dependents tab and returns its editor.
func (a *Aggregate) Dependents() *DependentEditor {
	a.show(TabDependents)
	return a.dependents
}

// EmergencyContact returns the dependent flagged as emergency contact, if any.
func (a *Aggregate) EmergencyContact() (models.Dependent, bool) {
	return emergencyContact(a.profile.Dependents)
}

// Progress returns the share of completed profile checks as a percentage.
// The checks are: name, date of birth, email, mobile, at least one payment method,
// at least one address, and at least one condition or allergy.
func (a *Aggregate) Progress() float64 {
	p := a.profile
	checks := []bool{
		p.FullName != "",
		p.DateOfBirth != "",
		p.Contact.Email != "",
		p.Contact.MobileNumber != "",
		len(p.PaymentMethods) > 0,
		len(p.Addresses) > 0,
		len(p.HealthInfo.Conditions) > 0 || len(p.HealthInfo.Allergies) > 0,
	}
	done := 0
	for _, ok := range checks {
		if ok {
			done++
		}
	}
	return float64(done) / float64(len(checks)) * 100
}

// show makes t the active tab, mounting a fresh editor when the tab changes.
func (a *Aggregate) show(t Tab) {
	if a.tab == t {
		return
	}
	a.tab = t
	a.contact, a.payments, a.addresses, a.health, a.dependents = nil, nil, nil, nil, nil

	switch t {
	case TabContact:
		a.contact = NewContactEditor(a.profile.Contact, func(c models.ContactInfo) {
			a.profile.Contact = c
		})
	case TabPayment:
		a.payments = NewPaymentEditor(a.profile.PaymentMethods, func(items []models.PaymentMethod) {
			a.profile.PaymentMethods = items
		})
	case TabAddress:
		a.addresses = NewAddressEditor(a.profile.Addresses, func(items []models.Address) {
			a.profile.Addresses = items
		})
	case TabHealth:
		a.health = NewHealthEditor(a.profile.HealthInfo, func(h models.HealthInfo) {
			a.profile.HealthInfo = h
		})
	case TabDependents:
		a.dependents = NewDependentEditor(a.profile.Dependents, func(items []models.Dependent) {
			a.profile.Dependents = items
		})
	}
}
