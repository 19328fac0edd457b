package profile

import (
	"fmt"
	"strings"

	"github.com/mmynk/memberportal/internal/models"
)

// Kind selects the condition or allergy list of HealthInfo.
type Kind string

const (
	KindCondition Kind = "condition"
	KindAllergy   Kind = "allergy"
)

// PendingRemoval is a removal waiting for confirmation.
type PendingRemoval struct {
	Kind  Kind   `json:"kind"`
	Index int    `json:"index"`
	Item  string `json:"item"`
}

// HealthEditor edits conditions and allergies.
//
// Adding a condition takes two steps: BeginCondition picks the name, ConfirmCondition
// stores it together with an optional description. Removal is also two-phase:
// RequestRemoval marks an entry and ConfirmRemoval or CancelRemoval resolves it.
type HealthEditor struct {
	info     models.HealthInfo
	naming   string
	pending  *PendingRemoval
	onChange func(models.HealthInfo)
}

// NewHealthEditor returns an editor over info.
func NewHealthEditor(info models.HealthInfo, onChange func(models.HealthInfo)) *HealthEditor {
	return &HealthEditor{info: info.Clone(), onChange: onChange}
}

// Info returns a copy of the committed health info.
func (e *HealthEditor) Info() models.HealthInfo {
	return e.info.Clone()
}

// Suggest returns catalog entries for a partially typed condition or allergy.
func Suggest(kind Kind, query string) ([]string, error) {
	switch kind {
	case KindCondition:
		return Conditions.Suggest(query), nil
	case KindAllergy:
		return Allergies.Suggest(query), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// BeginCondition picks a condition name and waits for its description.
func (e *HealthEditor) BeginCondition(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyEntry
	}
	e.naming = name
	return nil
}

// PendingCondition returns the condition waiting for a description.
func (e *HealthEditor) PendingCondition() (string, bool) {
	return e.naming, e.naming != ""
}

// ConfirmCondition appends the pending condition. A blank description is not stored.
func (e *HealthEditor) ConfirmCondition(description string) error {
	if e.naming == "" {
		return ErrNoPendingEntry
	}
	name := e.naming
	e.naming = ""

	e.info.Conditions = append(e.info.Conditions, name)
	if d := strings.TrimSpace(description); d != "" {
		if e.info.Descriptions == nil {
			e.info.Descriptions = map[string]string{}
		}
		e.info.Descriptions[name] = d
	}
	e.emit()
	return nil
}

// CancelCondition drops the pending condition.
func (e *HealthEditor) CancelCondition() {
	e.naming = ""
}

// AddAllergy appends an allergy. Allergies carry no description.
func (e *HealthEditor) AddAllergy(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyEntry
	}
	e.info.Allergies = append(e.info.Allergies, name)
	e.emit()
	return nil
}

// RequestRemoval marks an entry for removal, replacing any earlier request.
func (e *HealthEditor) RequestRemoval(kind Kind, index int) (PendingRemoval, error) {
	list, err := e.list(kind)
	if err != nil {
		return PendingRemoval{}, err
	}
	if index < 0 || index >= len(list) {
		return PendingRemoval{}, fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, kind, index)
	}
	e.pending = &PendingRemoval{Kind: kind, Index: index, Item: list[index]}
	return *e.pending, nil
}

// Pending returns the removal waiting for confirmation.
func (e *HealthEditor) Pending() (PendingRemoval, bool) {
	if e.pending == nil {
		return PendingRemoval{}, false
	}
	return *e.pending, true
}

// ConfirmRemoval removes the pending entry. Removing a condition also drops its description.
func (e *HealthEditor) ConfirmRemoval() error {
	if e.pending == nil {
		return ErrNoPendingRemoval
	}
	p := *e.pending
	e.pending = nil

	list, err := e.list(p.Kind)
	if err != nil {
		return err
	}
	if p.Index >= len(list) {
		return fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, p.Kind, p.Index)
	}
	kept := make([]string, 0, len(list)-1)
	kept = append(kept, list[:p.Index]...)
	kept = append(kept, list[p.Index+1:]...)

	if p.Kind == KindCondition {
		e.info.Conditions = kept
		delete(e.info.Descriptions, p.Item)
	} else {
		e.info.Allergies = kept
	}
	e.emit()
	return nil
}

// CancelRemoval clears the pending removal.
func (e *HealthEditor) CancelRemoval() {
	e.pending = nil
}

func (e *HealthEditor) list(kind Kind) ([]string, error) {
	switch kind {
	case KindCondition:
		return e.info.Conditions, nil
	case KindAllergy:
		return e.info.Allergies, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func (e *HealthEditor) emit() {
	if e.onChange != nil {
		e.onChange(e.info.Clone())
	}
}
