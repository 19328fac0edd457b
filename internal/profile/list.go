package profile

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/validation"
)

// listSpec describes one kind of list entry to the generic editor.
type listSpec[T any] struct {
	limit    int
	id       func(T) string
	withID   func(T, string) T
	validate func(T) error
	template func() T

	// prepare adjusts a draft right before it is stored. existing is nil when adding.
	prepare func(draft T, existing *T) T
}

// ListEditor edits a capped list of entities through a single edit buffer.
// At most one entry is being added or edited at a time.
type ListEditor[T any] struct {
	spec     listSpec[T]
	items    []T
	draft    *T
	editing  string
	errs     validation.Errors
	onChange func([]T)
	newID    func() string
}

func newListEditor[T any](spec listSpec[T], items []T, onChange func([]T)) *ListEditor[T] {
	return &ListEditor[T]{
		spec:     spec,
		items:    append([]T{}, items...),
		onChange: onChange,
		newID:    uuid.NewString,
	}
}

// NewAddressEditor returns an editor over at most models.MaxAddresses addresses.
func NewAddressEditor(items []models.Address, onChange func([]models.Address)) *ListEditor[models.Address] {
	return newListEditor(listSpec[models.Address]{
		limit:    models.MaxAddresses,
		id:       func(a models.Address) string { return a.ID },
		withID:   func(a models.Address, id string) models.Address { a.ID = id; return a },
		validate: validation.Address,
		template: func() models.Address { return models.Address{} },
	}, items, onChange)
}

// NewPaymentEditor returns an editor over at most models.MaxPaymentMethods payment methods.
// New drafts start as credit cards.
func NewPaymentEditor(items []models.PaymentMethod, onChange func([]models.PaymentMethod)) *ListEditor[models.PaymentMethod] {
	return newListEditor(listSpec[models.PaymentMethod]{
		limit:    models.MaxPaymentMethods,
		id:       func(p models.PaymentMethod) string { return p.ID },
		withID:   func(p models.PaymentMethod, id string) models.PaymentMethod { p.ID = id; return p },
		validate: validation.PaymentMethod,
		template: func() models.PaymentMethod { return models.PaymentMethod{Type: models.PaymentCredit} },
		prepare: func(p models.PaymentMethod, _ *models.PaymentMethod) models.PaymentMethod {
			if p.IsCard() {
				p.UPIID = ""
			} else {
				p.CardNumber, p.NameOnCard, p.ExpiryDate, p.CardType = "", "", "", ""
			}
			return p
		},
	}, items, onChange)
}

// Items returns a copy of the committed list.
func (e *ListEditor[T]) Items() []T {
	return append([]T{}, e.items...)
}

// Len returns the number of committed entries.
func (e *ListEditor[T]) Len() int {
	return len(e.items)
}

// CanAdd reports whether another entry fits under the cap.
func (e *ListEditor[T]) CanAdd() bool {
	return len(e.items) < e.spec.limit
}

// BeginAdd opens an empty draft for a new entry.
func (e *ListEditor[T]) BeginAdd() error {
	if !e.CanAdd() {
		return fmt.Errorf("%w: at most %d entries", ErrLimitReached, e.spec.limit)
	}
	draft := e.spec.template()
	e.draft = &draft
	e.editing = ""
	e.errs = nil
	return nil
}

// BeginEdit copies the entry with the given id into the edit buffer.
func (e *ListEditor[T]) BeginEdit(id string) error {
	i := e.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	draft := e.items[i]
	e.draft = &draft
	e.editing = id
	e.errs = nil
	return nil
}

// Draft returns the edit buffer and whether one is open.
func (e *ListEditor[T]) Draft() (T, bool) {
	if e.draft == nil {
		var zero T
		return zero, false
	}
	return *e.draft, true
}

// SetDraft replaces the edit buffer.
func (e *ListEditor[T]) SetDraft(v T) error {
	if e.draft == nil {
		return ErrNoDraft
	}
	e.draft = &v
	return nil
}

// Update applies fn to the edit buffer.
func (e *ListEditor[T]) Update(fn func(*T)) error {
	if e.draft == nil {
		return ErrNoDraft
	}
	fn(e.draft)
	return nil
}

// Editing returns the id of the entry being edited, or "" while adding.
func (e *ListEditor[T]) Editing() string {
	return e.editing
}

// Errors returns the field errors from the last failed save.
func (e *ListEditor[T]) Errors() validation.Errors {
	return e.errs
}

// Save validates the edit buffer and commits it.
// A new entry gets a fresh id and is appended; an edited one replaces its original in place.
func (e *ListEditor[T]) Save() (T, error) {
	var zero T
	if e.draft == nil {
		return zero, ErrNoDraft
	}

	if err := e.spec.validate(*e.draft); err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			e.errs = errs
		}
		return zero, err
	}

	var saved T
	if e.editing == "" {
		if !e.CanAdd() {
			return zero, fmt.Errorf("%w: at most %d entries", ErrLimitReached, e.spec.limit)
		}
		saved = e.spec.withID(e.prepare(*e.draft, nil), e.newID())
		e.items = append(e.items, saved)
	} else {
		i := e.indexOf(e.editing)
		if i < 0 {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, e.editing)
		}
		saved = e.spec.withID(e.prepare(*e.draft, &e.items[i]), e.editing)
		e.items[i] = saved
	}

	e.Cancel()
	e.emit()
	return saved, nil
}

// Cancel discards the edit buffer. The committed list is untouched.
func (e *ListEditor[T]) Cancel() {
	e.draft = nil
	e.editing = ""
	e.errs = nil
}

// Delete removes the entry with the given id, keeping the order of the rest.
func (e *ListEditor[T]) Delete(id string) error {
	i := e.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	kept := make([]T, 0, len(e.items)-1)
	kept = append(kept, e.items[:i]...)
	kept = append(kept, e.items[i+1:]...)
	e.items = kept

	if e.editing == id {
		e.Cancel()
	}
	e.emit()
	return nil
}

func (e *ListEditor[T]) prepare(draft T, existing *T) T {
	if e.spec.prepare == nil {
		return draft
	}
	return e.spec.prepare(draft, existing)
}

func (e *ListEditor[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range e.items {
		if e.spec.id(item) == id {
			return i
		}
	}
	return -1
}

func (e *ListEditor[T]) emit() {
	if e.onChange != nil {
		e.onChange(e.Items())
	}
}
