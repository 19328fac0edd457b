package profile

import (
	"fmt"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/validation"
)

// DependentEditor is the list editor for dependents plus the emergency-contact flag.
type DependentEditor struct {
	*ListEditor[models.Dependent]
}

// NewDependentEditor returns an editor over at most models.MaxDependents dependents.
func NewDependentEditor(items []models.Dependent, onChange func([]models.Dependent)) *DependentEditor {
	return &DependentEditor{newListEditor(listSpec[models.Dependent]{
		limit:    models.MaxDependents,
		id:       func(d models.Dependent) string { return d.ID },
		withID:   func(d models.Dependent, id string) models.Dependent { d.ID = id; return d },
		validate: validation.Dependent,
		template: func() models.Dependent { return models.Dependent{} },
		prepare: func(d models.Dependent, existing *models.Dependent) models.Dependent {
			// the flag only changes through SetEmergencyContact
			if existing == nil {
				d.IsEmergencyContact = false
			} else {
				d.IsEmergencyContact = existing.IsEmergencyContact
			}
			return d
		},
	}, items, onChange)}
}

// SetEmergencyContact flags the dependent with the given id and clears the flag on all others.
func (e *DependentEditor) SetEmergencyContact(id string) error {
	if e.indexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	for i := range e.items {
		e.items[i].IsEmergencyContact = e.items[i].ID == id
	}
	e.emit()
	return nil
}

// EmergencyContact returns the flagged dependent, if any.
func (e *DependentEditor) EmergencyContact() (models.Dependent, bool) {
	return emergencyContact(e.items)
}

func emergencyContact(deps []models.Dependent) (models.Dependent, bool) {
	for _, d := range deps {
		if d.IsEmergencyContact {
			return d, true
		}
	}
	return models.Dependent{}, false
}
