package models

// Address is one of the member's postal addresses (at most MaxAddresses).
type Address struct {
	// ID is assigned when the address is first saved.
	ID string `json:"id"`

	// Label names the address for the member (e.g. "Home", "Office").
	Label string `json:"label" validate:"required"`

	Line1 string `json:"line1" validate:"required,min=5"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city" validate:"required,min=2"`
	State string `json:"state" validate:"required,min=2"`

	// ZipCode is 5 or 6 digits.
	ZipCode  string `json:"zipCode" validate:"required,zipcode"`
	Landmark string `json:"landmark,omitempty"`
}
