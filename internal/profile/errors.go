package profile

import "errors"

var (
	ErrLimitReached     = errors.New("list limit reached")
	ErrNotFound         = errors.New("entry not found")
	ErrNoDraft          = errors.New("nothing is being edited")
	ErrNotEditing       = errors.New("contact is not in edit mode")
	ErrNoChanges        = errors.New("no changes to save")
	ErrUnknownField     = errors.New("unknown contact field")
	ErrEmptyEntry       = errors.New("entry is empty")
	ErrNoPendingEntry   = errors.New("no condition awaiting a description")
	ErrNoPendingRemoval = errors.New("no removal pending")
	ErrUnknownKind      = errors.New("unknown health item kind")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownTab       = errors.New("unknown tab")
	ErrNoProfile        = errors.New("no profile open for member")
)
