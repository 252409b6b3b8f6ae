package checkout

import (
	"errors"
	"fmt"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

var (
	// ErrCheckoutIsNotConstructed is returned when a Checkout was not created through NewCheckout.
	ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

	// ErrCheckoutExpired is returned for a session idle for longer than its TTL. It
	// matches errs.ErrObjectNotFound, an expired session is gone for the customer.
	ErrCheckoutExpired = fmt.Errorf("checkout session expired: %w", errs.ErrObjectNotFound)
)

// Checkout is one customer's open order form: the draft being filled in and the date
// picker whose cutoff was fixed when the form opened. It lives only in memory and
// closes when the order is stored or the session expires.
type Checkout struct {
	id             kernel.UUID
	draft          order.Draft
	picker         DatePicker
	openedAt       time.Time
	lastActivityAt time.Time
	guard          guard.ConstructorGuard
}

// NewCheckout opens a checkout at now. The calendar day of now, in now's location,
// becomes the date picker cutoff.
//
// Example:
//
//	c, err := checkout.NewCheckout(kernel.NewUUID(), time.Now().In(loc), checkout.WithSundaysDisabled())
func NewCheckout(id kernel.UUID, now time.Time, opts ...DatePickerOption) (*Checkout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	return &Checkout{
		id:             id,
		draft:          order.NewDraft(),
		picker:         NewDatePicker(kernel.DateOf(now), opts...),
		openedAt:       now,
		lastActivityAt: now,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Checkout instance was properly constructed.
func (c *Checkout) Validate() error {
	if c == nil {
		return ErrCheckoutIsNotConstructed
	}
	return c.guard.Validate(ErrCheckoutIsNotConstructed)
}

func (c *Checkout) ID() kernel.UUID           { return c.id }
func (c *Checkout) OpenedAt() time.Time       { return c.openedAt }
func (c *Checkout) LastActivityAt() time.Time { return c.lastActivityAt }

// Draft returns a copy of the current draft.
func (c *Checkout) Draft() order.Draft {
	return c.draft
}

// Picker returns a copy of the date picker, for rendering.
func (c *Checkout) Picker() DatePicker {
	return c.picker
}

// Touch records customer activity and pushes the expiry forward.
func (c *Checkout) Touch(now time.Time) {
	if now.After(c.lastActivityAt) {
		c.lastActivityAt = now
	}
}

// IsExpired reports whether the session was idle for longer than ttl. A non-positive
// ttl never expires.
func (c *Checkout) IsExpired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(c.lastActivityAt) > ttl
}

// EnsureActive returns ErrCheckoutExpired when IsExpired holds.
func (c *Checkout) EnsureActive(now time.Time, ttl time.Duration) error {
	if c.IsExpired(now, ttl) {
		return ErrCheckoutExpired
	}
	return nil
}

// UpdateDraft applies fn to a copy of the draft and keeps the result only when fn
// succeeds, so a rejected partial update leaves the draft as it was. The delivery
// date always comes from the date picker.
func (c *Checkout) UpdateDraft(fn func(d *order.Draft) error) error {
	next := c.draft
	if err := fn(&next); err != nil {
		return err
	}

	selected, _ := c.picker.Selected()
	next.SetDeliveryDate(selected)
	c.draft = next
	return nil
}

// SelectDeliveryDate chooses the delivery day through the picker rules.
func (c *Checkout) SelectDeliveryDate(d kernel.Date) error {
	if err := c.picker.Select(d); err != nil {
		return err
	}
	c.draft.SetDeliveryDate(d)
	return nil
}

// PlaceOrder turns a submittable draft into a New order. The checkout itself is left
// untouched so the customer can retry if storing the order fails.
func (c *Checkout) PlaceOrder() (*order.Order, error) {
	return c.draft.PlaceOrder()
}

// Clone returns an independent copy, used by the in-memory session registry.
func (c *Checkout) Clone() *Checkout {
	clone := *c
	return &clone
}
