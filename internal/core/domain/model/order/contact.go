package order

import "strings"

// Contact holds how the staff reaches the customer. WhatsApp is the phone number as the
// customer typed it, punctuation included; Email is optional.
type Contact struct {
	FullName string
	WhatsApp string
	Email    string
}

// Address is where the package is delivered. CEP (postal code) and Complement may be
// empty on a stored order; the checkout form requires the CEP before submission.
type Address struct {
	CEP          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
}

// Normalize trims surrounding whitespace from every field.
func (c Contact) Normalize() Contact {
	return Contact{
		FullName: strings.TrimSpace(c.FullName),
		WhatsApp: strings.TrimSpace(c.WhatsApp),
		Email:    strings.TrimSpace(c.Email),
	}
}

// Normalize trims surrounding whitespace from every field.
func (a Address) Normalize() Address {
	return Address{
		CEP:          strings.TrimSpace(a.CEP),
		Street:       strings.TrimSpace(a.Street),
		Number:       strings.TrimSpace(a.Number),
		Complement:   strings.TrimSpace(a.Complement),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		City:         strings.TrimSpace(a.City),
	}
}
