package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/memberportal/internal/models"
)

// messages maps "Struct.field" or "Struct.field.tag" to the text the portal shows.
// The tag-specific key wins when both exist.
var messages = map[string]string{
	"Address.label":   "Address label is required",
	"Address.line1":   "Address line 1 must be at least 5 characters",
	"Address.city":    "City is required",
	"Address.state":   "State is required",
	"Address.zipCode": MsgZipCode,

	"PaymentMethod.type":       "Choose credit, debit or upi",
	"PaymentMethod.cardNumber": MsgCardNumber,
	"PaymentMethod.nameOnCard": "Name on card is required",
	"PaymentMethod.expiryDate": MsgExpiryDate,
	"PaymentMethod.cardType":   "Choose Visa, MasterCard or AmericanExpress",
	"PaymentMethod.upiId":      MsgUPIID,

	"Dependent.name":                  "Full Name is required",
	"Dependent.relation.required":     "Relation is required",
	"Dependent.relation":              "Relation must be spouse, child, parent or sibling",
	"Dependent.dateOfBirth.required":  "Date of Birth is required",
	"Dependent.dateOfBirth":           MsgDOBInvalid,
	"Dependent.mobileNumber.required": "Mobile Number is required",
	"Dependent.mobileNumber":          MsgMobile,
	"Dependent.email.required":        "Email Address is required",
	"Dependent.email":                 MsgEmail,

	"ContactInfo.mobileNumber.required": MsgMobileRequired,
	"ContactInfo.mobileNumber":          MsgMobile,
	"ContactInfo.countryCode":           "Enter a valid country code (e.g. +91)",
	"ContactInfo.email.required":        "Email is required",
	"ContactInfo.email":                 MsgEmail,
	"ContactInfo.preferredContact":      "Choose mobile, email or text",

	"SignupForm.fullName.required": "Full name is required",
	"SignupForm.fullName":          MsgFullName,
	"SignupForm.email.required":    "Email is required",
	"SignupForm.email":             MsgEmail,
	"SignupForm.mobile.required":   MsgMobileRequired,
	"SignupForm.mobile":            MsgMobile,

	"Identity.memberId.required":    "Member ID is required",
	"Identity.memberId":             MsgMemberID,
	"Identity.dateOfBirth.required": MsgDOBRequired,
	"Identity.dateOfBirth":          MsgDOBInvalid,
	"Identity.mobile.required":      MsgMobileRequired,
	"Identity.mobile":               MsgMobile,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	rules := map[string]func(string) bool{
		"zipcode":     zipCodeRe.MatchString,
		"cardnumber":  cardNumberRe.MatchString,
		"expiry":      expiryRe.MatchString,
		"upiid":       upiRe.MatchString,
		"mobile":      mobileRe.MatchString,
		"phone10":     phone10Re.MatchString,
		"email":       emailRe.MatchString,
		"memberid":    memberIDRe.MatchString,
		"otp":         otpRe.MatchString,
		"countrycode": countryCodeRe.MatchString,
		"fullname": func(s string) bool {
			return fullNameRe.MatchString(strings.TrimSpace(s))
		},
		"isodate": func(s string) bool {
			return isPastDate(s, time.Now())
		},
	}
	for tag, match := range rules {
		match := match
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return match(fl.Field().String())
		}); err != nil {
			panic("validation: register " + tag + ": " + err.Error())
		}
	}

	v.RegisterStructValidation(paymentMethodRules, models.PaymentMethod{})
	return v
}

// paymentMethodRules applies the card rules to credit/debit methods and the UPI rule to upi ones.
func paymentMethodRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.PaymentMethod)
	if !p.IsCard() {
		if !upiRe.MatchString(p.UPIID) {
			sl.ReportError(p.UPIID, "upiId", "UPIID", "upiid", "")
		}
		return
	}
	if !cardNumberRe.MatchString(p.CardNumber) {
		sl.ReportError(p.CardNumber, "cardNumber", "CardNumber", "cardnumber", "")
	}
	if len(p.NameOnCard) < 3 {
		sl.ReportError(p.NameOnCard, "nameOnCard", "NameOnCard", "min", "3")
	}
	if !expiryRe.MatchString(p.ExpiryDate) {
		sl.ReportError(p.ExpiryDate, "expiryDate", "ExpiryDate", "expiry", "")
	}
	switch p.CardType {
	case "", models.CardVisa, models.CardMasterCard, models.CardAmericanExpress:
	default:
		sl.ReportError(p.CardType, "cardType", "CardType", "oneof", "")
	}
}

// Address validates an address draft.
func Address(a models.Address) error {
	return structErrors(a).Err()
}

// PaymentMethod validates a payment method draft.
func PaymentMethod(p models.PaymentMethod) error {
	return structErrors(p).Err()
}

// Dependent validates a dependent draft.
func Dependent(d models.Dependent) error {
	return structErrors(d).Err()
}

// Contact validates contact details before they are committed.
func Contact(c models.ContactInfo) error {
	return structErrors(c).Err()
}

// Identity validates the login form.
func Identity(id models.Identity) error {
	return structErrors(id).Err()
}

// Signup validates the signup form; the age window is evaluated at now.
func Signup(f models.SignupForm, now time.Time) error {
	errs := structErrors(f)
	errs.Add("dateOfBirth", DateOfBirth(f.DateOfBirth, now))
	return errs.Err()
}

func structErrors(v any) Errors {
	errs := Errors{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("_", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	key := fe.Namespace()
	if msg, ok := messages[key+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[key]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
