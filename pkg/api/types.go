// Package api defines the request and response messages of the member portal RPCs.
//
// Messages are plain structs encoded as JSON; apiconnect binds them to Connect handlers
// and clients. Domain records are shared with the server through type aliases.
package api

import "github.com/mmynk/memberportal/internal/models"

// Domain records carried by the messages.
type (
	Member        = models.Member
	Profile       = models.Profile
	ContactInfo   = models.ContactInfo
	Address       = models.Address
	PaymentMethod = models.PaymentMethod
	HealthInfo    = models.HealthInfo
	Dependent     = models.Dependent
)

// FieldErrorKey is the error metadata key carrying one "field: message" entry per invalid field.
const FieldErrorKey = "Field-Error"
