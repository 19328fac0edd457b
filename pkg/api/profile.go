package api

// ProfileView is the profile page as a whole.
type ProfileView struct {
	Profile  Profile `json:"profile"`
	Tab      string  `json:"tab"`
	Progress float64 `json:"progress"`
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	View ProfileView `json:"view"`
}

type SelectTabRequest struct {
	Tab string `json:"tab"`
}

type SelectTabResponse struct {
	View ProfileView `json:"view"`
}

// ContactEdit is the state of the contact editor.
type ContactEdit struct {
	Contact    ContactInfo  `json:"contact"`
	Draft      *ContactInfo `json:"draft,omitempty"`
	HasChanges bool         `json:"hasChanges"`
	Verified   bool         `json:"verified"`
}

type BeginContactEditRequest struct{}

type UpdateContactDraftRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type VerifyMobileRequest struct{}

type SaveContactRequest struct{}

type CancelContactEditRequest struct{}

type ContactEditResponse struct {
	Edit ContactEdit `json:"edit"`
}

// SaveAddressRequest adds the address when ID is empty and replaces it otherwise.
type SaveAddressRequest struct {
	Address Address `json:"address"`
}

type DeleteAddressRequest struct {
	ID string `json:"id"`
}

type AddressesResponse struct {
	Addresses []Address `json:"addresses"`
	Saved     *Address  `json:"saved,omitempty"`
	CanAdd    bool      `json:"canAdd"`
}

// SavePaymentMethodRequest adds the method when ID is empty and replaces it otherwise.
type SavePaymentMethodRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type DeletePaymentMethodRequest struct {
	ID string `json:"id"`
}

type PaymentMethodsResponse struct {
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Saved          *PaymentMethod  `json:"saved,omitempty"`
	CanAdd         bool            `json:"canAdd"`
}

// SaveDependentRequest adds the dependent when ID is empty and replaces it otherwise.
// IsEmergencyContact is ignored; use SetEmergencyContact.
type SaveDependentRequest struct {
	Dependent Dependent `json:"dependent"`
}

type DeleteDependentRequest struct {
	ID string `json:"id"`
}

type SetEmergencyContactRequest struct {
	ID string `json:"id"`
}

type DependentsResponse struct {
	Dependents []Dependent `json:"dependents"`
	Saved      *Dependent  `json:"saved,omitempty"`
	CanAdd     bool        `json:"canAdd"`
}

type GetEmergencyContactRequest struct{}

type GetEmergencyContactResponse struct {
	Dependent *Dependent `json:"dependent,omitempty"`
}

type SuggestHealthItemsRequest struct {
	Kind  string `json:"kind"`
	Query string `json:"query"`
}

type SuggestHealthItemsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// PendingRemoval is a health entry waiting for removal confirmation.
type PendingRemoval struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	Item  string `json:"item"`
}

// HealthEdit is the state of the health editor.
type HealthEdit struct {
	Health           HealthInfo      `json:"health"`
	PendingCondition string          `json:"pendingCondition,omitempty"`
	PendingRemoval   *PendingRemoval `json:"pendingRemoval,omitempty"`
}

type AddConditionRequest struct {
	Name string `json:"name"`
}

type ConfirmConditionRequest struct {
	Description string `json:"description"`
}

type CancelConditionRequest struct{}

type AddAllergyRequest struct {
	Name string `json:"name"`
}

type RequestHealthRemovalRequest struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

type ConfirmHealthRemovalRequest struct{}

type CancelHealthRemovalRequest struct{}

type HealthResponse struct {
	Edit HealthEdit `json:"edit"`
}
