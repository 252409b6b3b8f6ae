package commands

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/core/ports"
)

// UpdateCheckoutDraftCommandHandler edits drafts. Package and size choices are
// resolved against the catalog; an unknown package ID or size label is rejected and
// the whole edit is dropped.
type UpdateCheckoutDraftCommandHandler struct {
	repo    ports.CheckoutRepository
	catalog *catalog.Catalog
	now     func() time.Time
	ttl     time.Duration
}

// NewUpdateCheckoutDraftCommandHandler creates the handler. Sessions idle for longer
// than ttl are treated as gone.
func NewUpdateCheckoutDraftCommandHandler(
	repo ports.CheckoutRepository,
	cat *catalog.Catalog,
	now func() time.Time,
	ttl time.Duration,
) UpdateCheckoutDraftCommandHandler {
	return UpdateCheckoutDraftCommandHandler{
		repo:    repo,
		catalog: cat,
		now:     now,
		ttl:     ttl,
	}
}

// Handle applies the changes and stores the session.
func (h UpdateCheckoutDraftCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCheckoutDraftCommand,
) (*checkout.Checkout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	c, err := loadActiveCheckout(ctx, h.repo, cmd.CheckoutID(), now, h.ttl)
	if err != nil {
		return nil, err
	}

	if err = c.UpdateDraft(func(d *order.Draft) error {
		return h.apply(d, cmd.Changes())
	}); err != nil {
		return nil, err
	}

	c.Touch(now)
	if err = h.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (h UpdateCheckoutDraftCommandHandler) apply(d *order.Draft, changes DraftChanges) error {
	if changes.PackageID != nil {
		pkg, err := h.catalog.Package(*changes.PackageID)
		if err != nil {
			return err
		}
		if err = d.SelectPackage(pkg); err != nil {
			return err
		}
	}

	if changes.Size != nil {
		size, err := h.catalog.Size(*changes.Size)
		if err != nil {
			return err
		}
		if err = d.SelectSize(size); err != nil {
			return err
		}
	}

	contact := d.Contact()
	assign(&contact.FullName, changes.FullName)
	assign(&contact.WhatsApp, changes.WhatsApp)
	assign(&contact.Email, changes.Email)
	d.SetContact(contact)

	address := d.Address()
	assign(&address.CEP, changes.CEP)
	assign(&address.Street, changes.Street)
	assign(&address.Number, changes.Number)
	assign(&address.Complement, changes.Complement)
	assign(&address.Neighborhood, changes.Neighborhood)
	assign(&address.City, changes.City)
	d.SetAddress(address)

	if changes.Observations != nil {
		d.SetObservations(*changes.Observations)
	}

	return nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
