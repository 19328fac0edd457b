package models

// PaymentType distinguishes cards from UPI handles.
type PaymentType string

const (
	PaymentCredit PaymentType = "credit"
	PaymentDebit  PaymentType = "debit"
	PaymentUPI    PaymentType = "upi"
)

// CardType is the card network shown on the payment form.
type CardType string

const (
	CardVisa            CardType = "Visa"
	CardMasterCard      CardType = "MasterCard"
	CardAmericanExpress CardType = "AmericanExpress"
)

// PaymentMethod is a saved card or UPI handle (at most MaxPaymentMethods).
//
// Card fields are only meaningful when Type is credit or debit; UPIID only when Type is upi.
// The conditional rules are applied by a struct-level validation.
type PaymentMethod struct {
	ID   string      `json:"id"`
	Type PaymentType `json:"type" validate:"oneof=credit debit upi"`

	// CardNumber is 16 digits, no separators.
	CardNumber string `json:"cardNumber,omitempty"`
	NameOnCard string `json:"nameOnCard,omitempty"`

	// ExpiryDate is MM/YY.
	ExpiryDate string   `json:"expiryDate,omitempty"`
	CardType   CardType `json:"cardType,omitempty"`

	// UPIID looks like local@domain.
	UPIID string `json:"upiId,omitempty"`
}

// IsCard reports whether the method carries card details.
func (p PaymentMethod) IsCard() bool {
	return p.Type != PaymentUPI
}

// Last4 returns the last four digits of the card number, or "" for UPI methods.
func (p PaymentMethod) Last4() string {
	if !p.IsCard() || len(p.CardNumber) < 4 {
		return ""
	}
	return p.CardNumber[len(p.CardNumber)-4:]
}
