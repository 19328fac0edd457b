package models

// List caps enforced by the profile editors at add time.
const (
	MaxAddresses      = 3
	MaxPaymentMethods = 4
	MaxDependents     = 4
)

// DefaultCountryCode is used for new profiles.
const DefaultCountryCode = "+91"

// PreferredContact is the channel a member wants to be reached on.
type PreferredContact string

const (
	PreferMobile PreferredContact = "mobile"
	PreferEmail  PreferredContact = "email"
	PreferText   PreferredContact = "text"
)

// Profile is the full member profile edited through the portal tabs.
type Profile struct {
	MemberID       string          `json:"memberId"`
	FullName       string          `json:"fullName"`
	DateOfBirth    string          `json:"dateOfBirth"`
	Contact        ContactInfo     `json:"contact"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Addresses      []Address       `json:"addresses"`
	HealthInfo     HealthInfo      `json:"healthInfo"`
	Dependents     []Dependent     `json:"dependents"`
}

// ContactInfo holds how the member is reached.
// It is a comparable value: the contact editor detects changes with ==.
type ContactInfo struct {
	MobileNumber     string           `json:"mobileNumber" validate:"required,mobile"`
	CountryCode      string           `json:"countryCode" validate:"omitempty,countrycode"`
	Email            string           `json:"email" validate:"required,email"`
	PreferredContact PreferredContact `json:"preferredContact" validate:"oneof=mobile email text"`
}

// HealthInfo lists the member's conditions and allergies.
type HealthInfo struct {
	// Conditions are kept in insertion order; duplicates are allowed.
	Conditions []string `json:"conditions"`

	// Allergies are kept in insertion order; duplicates are allowed.
	Allergies []string `json:"allergies"`

	// Descriptions maps a condition name to an optional free-text note.
	Descriptions map[string]string `json:"descriptions"`
}

// NewProfile returns the default profile shown right after login.
// Member details are copied in when the member is known to the directory.
func NewProfile(memberID string, member *Member) Profile {
	p := Profile{
		MemberID: memberID,
		Contact: ContactInfo{
			CountryCode:      DefaultCountryCode,
			PreferredContact: PreferMobile,
		},
		PaymentMethods: []PaymentMethod{},
		Addresses:      []Address{},
		HealthInfo: HealthInfo{
			Conditions:   []string{},
			Allergies:    []string{},
			Descriptions: map[string]string{},
		},
		Dependents: []Dependent{},
	}
	if member != nil {
		p.FullName = member.FullName
		p.DateOfBirth = member.DateOfBirth
		p.Contact.MobileNumber = member.Mobile
		p.Contact.Email = member.Email
	}
	return p
}

// Clone returns a deep copy so callers can't mutate the aggregate through shared slices.
func (p Profile) Clone() Profile {
	out := p
	out.PaymentMethods = append([]PaymentMethod{}, p.PaymentMethods...)
	out.Addresses = append([]Address{}, p.Addresses...)
	out.Dependents = append([]Dependent{}, p.Dependents...)
	out.HealthInfo = p.HealthInfo.Clone()
	return out
}

// Clone returns a deep copy of the health info.
func (h HealthInfo) Clone() HealthInfo {
	out := HealthInfo{
		Conditions:   append([]string{}, h.Conditions...),
		Allergies:    append([]string{}, h.Allergies...),
		Descriptions: make(map[string]string, len(h.Descriptions)),
	}
	for k, v := range h.Descriptions {
		out.Descriptions[k] = v
	}
	return out
}
