package order

import (
	"errors"
	"strings"

	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/kernel"
)

// ErrDraftIncomplete is the single message shown when a checkout cannot be submitted.
// The form never reports which field is missing.
var ErrDraftIncomplete = errors.New("Por favor, preencha todos os campos obrigatórios e escolha pacote/tamanho/data.")

const (
	minFullNameLength = 4
	minWhatsAppLength = 10
)

// Draft is the order a customer builds step by step at checkout: package, size,
// contact, delivery date, address and observations, in any order. A draft is never
// stored; SubmitOrder turns it into an Order once IsSubmittable holds.
//
// The zero Draft is empty and ready to use.
type Draft struct {
	pkg          catalog.Package
	hasPackage   bool
	size         string
	contact      Contact
	deliveryDate kernel.Date
	address      Address
	observations string
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{}
}

// SelectPackage replaces the chosen package tier.
func (d *Draft) SelectPackage(pkg catalog.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	d.pkg = pkg
	d.hasPackage = true
	return nil
}

// SelectSize replaces the chosen size.
func (d *Draft) SelectSize(size catalog.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	d.size = size.Label()
	return nil
}

// SetDeliveryDate stores the date chosen in the date picker. The picker owns the
// disable rule, the draft only carries the result.
func (d *Draft) SetDeliveryDate(date kernel.Date) {
	d.deliveryDate = date
}

// SetContact replaces the contact fields. Values are kept as typed.
func (d *Draft) SetContact(contact Contact) {
	d.contact = contact
}

// SetAddress replaces the address fields. Values are kept as typed.
func (d *Draft) SetAddress(address Address) {
	d.address = address
}

// SetObservations replaces the free text note for the delivery.
func (d *Draft) SetObservations(observations string) {
	d.observations = observations
}

// Package returns the chosen tier and whether one was chosen.
func (d Draft) Package() (catalog.Package, bool) {
	return d.pkg, d.hasPackage
}

func (d Draft) Size() string              { return d.size }
func (d Draft) Contact() Contact          { return d.contact }
func (d Draft) DeliveryDate() kernel.Date { return d.deliveryDate }
func (d Draft) Address() Address          { return d.address }
func (d Draft) Observations() string      { return d.observations }

// IsSubmittable reports whether every required choice and field is present:
//   - a package, a size and a delivery date are selected
//   - the full name is longer than 3 characters after trimming
//   - the WhatsApp number has at least 10 characters
//   - CEP, street, number, neighborhood and city are not blank
//
// Email, complement and observations are never required.
func (d Draft) IsSubmittable() bool {
	return d.Check() == nil
}

// Check is IsSubmittable reporting ErrDraftIncomplete on failure.
func (d Draft) Check() error {
	if !d.hasPackage || d.size == "" || d.deliveryDate.IsZero() {
		return ErrDraftIncomplete
	}

	if len([]rune(strings.TrimSpace(d.contact.FullName))) < minFullNameLength {
		return ErrDraftIncomplete
	}
	if len([]rune(d.contact.WhatsApp)) < minWhatsAppLength {
		return ErrDraftIncomplete
	}

	for _, field := range []string{
		d.address.CEP,
		d.address.Street,
		d.address.Number,
		d.address.Neighborhood,
		d.address.City,
	} {
		if strings.TrimSpace(field) == "" {
			return ErrDraftIncomplete
		}
	}

	return nil
}

// PlaceOrder validates the draft and builds a New order carrying the package name and
// price as they are right now. A draft that passes Check but holds only blanks in a
// field the order needs fails with ErrDraftIncomplete as well.
func (d Draft) PlaceOrder() (*Order, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}

	o, err := NewOrder(Details{
		PackageName:  d.pkg.Name(),
		PackagePrice: d.pkg.Price(),
		Size:         d.size,
		Contact:      d.contact,
		DeliveryDate: d.deliveryDate,
		Address:      d.address,
		Observations: d.observations,
	})
	if err != nil {
		return nil, ErrDraftIncomplete
	}
	return o, nil
}
