package models

// Relation is how a dependent is related to the member.
type Relation string

const (
	RelationSpouse  Relation = "spouse"
	RelationChild   Relation = "child"
	RelationParent  Relation = "parent"
	RelationSibling Relation = "sibling"
)

// Dependent is a family member covered by the plan (at most MaxDependents).
type Dependent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Relation     Relation `json:"relation" validate:"required,oneof=spouse child parent sibling"`
	DateOfBirth  string   `json:"dateOfBirth" validate:"required,isodate"`
	MobileNumber string   `json:"mobileNumber" validate:"required,phone10"`
	Email        string   `json:"email" validate:"required,email"`

	// IsEmergencyContact is true on at most one dependent of a profile.
	IsEmergencyContact bool `json:"isEmergencyContact"`
}
