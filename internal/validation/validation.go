// Package validation checks the login and checkout forms.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Form fields
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldAddress = "address"
	FieldPincode = "pincode"
)

// Reasons a field can be rejected. The UI maps these to localized messages.
const (
	ReasonNameRequired      = "name_required"
	ReasonPhoneInvalid      = "phone_invalid"
	ReasonAddressIncomplete = "address_incomplete"
	ReasonPincodeInvalid    = "pincode_invalid"
)

const (
	minAddressLen = 10
	pincodeLen    = 6
	phoneLen      = 10
)

// FieldError describes one rejected field
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError carries every rejected field of a form, in form order
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

// Reason returns the rejection reason for field, or "" if that field passed
func (e *ValidationError) Reason(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Reason
		}
	}
	return ""
}

// Checkout validates a delivery address and pincode. The address must be at
// least 10 characters after trimming; the pincode must be exactly 6 digits
// after trimming.
func Checkout(address, pincode string) error {
	var fields []FieldError
	if utf8.RuneCountInString(strings.TrimSpace(address)) < minAddressLen {
		fields = append(fields, FieldError{Field: FieldAddress, Reason: ReasonAddressIncomplete})
	}
	if !isDigits(strings.TrimSpace(pincode), pincodeLen) {
		fields = append(fields, FieldError{Field: FieldPincode, Reason: ReasonPincodeInvalid})
	}
	return result(fields)
}

// Login validates the onboarding form: a non-blank name and a 10 digit phone
// number.
func Login(name, phone string) error {
	var fields []FieldError
	if strings.TrimSpace(name) == "" {
		fields = append(fields, FieldError{Field: FieldName, Reason: ReasonNameRequired})
	}
	if !isDigits(strings.TrimSpace(phone), phoneLen) {
		fields = append(fields, FieldError{Field: FieldPhone, Reason: ReasonPhoneInvalid})
	}
	return result(fields)
}

func result(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// isDigits reports whether s is exactly n ASCII digits
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
