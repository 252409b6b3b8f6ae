package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrIdentityAlreadyAssigned is returned when a store tries to give a second
	// identifier to an order that already has one.
	ErrIdentityAlreadyAssigned = errors.New("order identity is already assigned")
)

// Details is everything the customer chose and typed at checkout. The package name and
// price are a snapshot taken at submission, so later catalog edits never alter
// historical orders.
type Details struct {
	PackageName  string
	PackagePrice decimal.Decimal
	Size         string
	Contact      Contact
	DeliveryDate kernel.Date
	Address      Address
	Observations string
}

// Order is one customer's delivery request. It is the aggregate root of the intake
// and admin review workflows.
//
// Order follows these invariants:
//   - Identifier and creation time are assigned once, by the store, and never change
//   - Package snapshot, size, contact, delivery date and address are immutable
//   - Only status and admin notes change after creation, through ChangeStatus
//   - Can only be created through NewOrder (intake) or RestoreOrder (persistence)
type Order struct {
	// id is empty until the order is first stored
	id kernel.UUID

	// createdAt is set together with id
	createdAt time.Time

	details Details

	// status is freely changed by staff
	status Status

	// adminNotes is internal text never shown to the customer
	adminNotes string

	guard guard.ConstructorGuard
}

// NewOrder creates an order placed at checkout. The order starts in status New and has
// no identity until a store assigns one with AssignIdentity.
//
// Example:
//
//	o, err := order.NewOrder(order.Details{
//	    PackageName:  pkg.Name(),
//	    PackagePrice: pkg.Price(),
//	    Size:         "G",
//	    Contact:      order.Contact{FullName: "Maria Silva", WhatsApp: "11988887777"},
//	    DeliveryDate: tomorrow,
//	    Address:      address,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(details Details) (*Order, error) {
	o := &Order{
		status: New,
		guard:  guard.NewConstructorGuard(),
	}

	if err := o.setDetails(details); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from a store. Unlike NewOrder it requires the
// identity and accepts any valid status.
func RestoreOrder(
	id kernel.UUID,
	createdAt time.Time,
	details Details,
	status Status,
	adminNotes string,
) (*Order, error) {
	o := &Order{
		adminNotes: strings.TrimSpace(adminNotes),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two stored orders by identifier. Orders without identity are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.HasIdentity() && o.id.IsEqual(other.id)
}

// HasIdentity reports whether a store already assigned the identifier.
func (o *Order) HasIdentity() bool {
	return o.id.Validate() == nil
}

// AssignIdentity gives a freshly placed order its identifier and creation time. It is
// called by stores on Create and fails if the order was already stored.
func (o *Order) AssignIdentity(id kernel.UUID, createdAt time.Time) error {
	if o.HasIdentity() {
		return ErrIdentityAlreadyAssigned
	}

	return errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
	)
}

func (o *Order) ID() kernel.UUID               { return o.id }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) Details() Details              { return o.details }
func (o *Order) PackageName() string           { return o.details.PackageName }
func (o *Order) PackagePrice() decimal.Decimal { return o.details.PackagePrice }
func (o *Order) Size() string                  { return o.details.Size }
func (o *Order) Contact() Contact              { return o.details.Contact }
func (o *Order) DeliveryDate() kernel.Date     { return o.details.DeliveryDate }
func (o *Order) Address() Address              { return o.details.Address }
func (o *Order) Observations() string          { return o.details.Observations }
func (o *Order) Status() Status                { return o.status }
func (o *Order) AdminNotes() string            { return o.adminNotes }

// ChangeStatus moves the order to any valid status. A nil notes pointer leaves the
// admin notes untouched; a non-nil one replaces them, an empty string clears them.
//
// Example:
//
//	notes := "cliente pediu entrega à tarde"
//	if err := o.ChangeStatus(order.Scheduled, &notes); err != nil {
//	    return err
//	}
func (o *Order) ChangeStatus(status Status, notes *string) error {
	if err := o.setStatus(status); err != nil {
		return err
	}

	if notes != nil {
		o.adminNotes = strings.TrimSpace(*notes)
	}
	return nil
}

// Clone returns an independent copy, used by stores that keep orders in memory.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(details Details) error {
	d := Details{
		PackageName:  strings.TrimSpace(details.PackageName),
		PackagePrice: details.PackagePrice,
		Size:         strings.TrimSpace(details.Size),
		Contact:      details.Contact.Normalize(),
		DeliveryDate: details.DeliveryDate,
		Address:      details.Address.Normalize(),
		Observations: strings.TrimSpace(details.Observations),
	}

	var fieldErrs []error
	required := []struct {
		name  string
		value string
	}{
		{"packageName", d.PackageName},
		{"size", d.Size},
		{"fullName", d.Contact.FullName},
		{"whatsapp", d.Contact.WhatsApp},
		{"street", d.Address.Street},
		{"number", d.Address.Number},
		{"neighborhood", d.Address.Neighborhood},
		{"city", d.Address.City},
	}
	for _, field := range required {
		if field.value == "" {
			fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError(field.name))
		}
	}

	if d.PackagePrice.IsNegative() {
		fieldErrs = append(fieldErrs, errs.NewValueIsInvalidErrorWithCause(
			"packagePrice is invalid", fmt.Errorf("%s is negative", d.PackagePrice.String())))
	}

	if err := d.DeliveryDate.Validate(); err != nil {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredErrorWithCause("deliveryDate", err))
	}

	if err := errors.Join(fieldErrs...); err != nil {
		return err
	}

	o.details = d
	return nil
}
