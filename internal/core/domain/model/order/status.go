package order

import (
	"fmt"
	"strings"

	"nexa/internal/pkg/errs"
)

// Status is the lifecycle stage of an order as seen by the operations staff.
//
// There is no transition graph: an admin may move an order from any status to any
// other, which keeps manual corrections possible. New is the only status set
// automatically, when an order is placed.
//
//	New ─> Contacted ─> Scheduled ─> Shipped ─> Completed
//	 └──────────────── any ─> any ───────────────┘   Cancelled
//
// String returns the English name used on the wire and in storage. Label returns
// the Portuguese text shown in the admin panel and in exports.
type Status int

const (
	// Unknown (0) catches uninitialized Status values.
	Unknown Status = iota

	// New is assigned to every order at submission.
	New

	// Contacted means the staff reached the customer on WhatsApp.
	Contacted

	// Scheduled means the delivery day was confirmed with the customer.
	Scheduled

	// Shipped means the package left with the courier.
	Shipped

	// Completed means the package was delivered and paid.
	Completed

	// Cancelled means the order will not be delivered.
	Cancelled
)

type statusNames struct {
	name  string
	label string
}

func getStatusNames() map[Status]statusNames {
	//nolint:exhaustive // Unknown has no names
	return map[Status]statusNames{
		New:       {name: "New", label: "Novo"},
		Contacted: {name: "Contacted", label: "Em contato"},
		Scheduled: {name: "Scheduled", label: "Agendado"},
		Shipped:   {name: "Shipped", label: "Enviado"},
		Completed: {name: "Completed", label: "Concluído"},
		Cancelled: {name: "Cancelled", label: "Cancelado"},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{New, Contacted, Scheduled, Shipped, Completed, Cancelled}
}

// ParseStatus accepts either the English name or the Portuguese label, ignoring case
// and surrounding spaces. Records written by the original landing page stored the
// label, so both forms must be readable.
//
// Example:
//
//	s, _ := order.ParseStatus("Em contato") // order.Contacted
//	s, _ = order.ParseStatus("shipped")     // order.Shipped
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, names := range getStatusNames() {
		if strings.EqualFold(needle, names.name) || strings.EqualFold(needle, names.label) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the six lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if names, ok := getStatusNames()[s]; ok {
		return names.name
	}
	return "Unknown"
}

// Label returns the display text of the status, or "Desconhecido" for invalid values.
func (s Status) Label() string {
	if names, ok := getStatusNames()[s]; ok {
		return names.label
	}
	return "Desconhecido"
}

// MarshalText implements encoding.TextMarshaler. Invalid statuses cannot be encoded.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseStatus.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
