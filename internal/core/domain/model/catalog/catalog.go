package catalog

import (
	"errors"
	"fmt"

	"nexa/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Catalog is the read-only set of packages and sizes offered at checkout.
// Packages and sizes keep the order they were registered in.
type Catalog struct {
	packages []Package
	sizes    []Size
}

// NewCatalog validates every entry and rejects duplicate package IDs or size labels.
func NewCatalog(packages []Package, sizes []Size) (*Catalog, error) {
	if len(packages) == 0 {
		return nil, errs.NewValueIsRequiredError("packages")
	}
	if len(sizes) == 0 {
		return nil, errs.NewValueIsRequiredError("sizes")
	}

	var validationErrs []error
	for _, p := range packages {
		validationErrs = append(validationErrs, p.Validate())
	}
	for _, s := range sizes {
		validationErrs = append(validationErrs, s.Validate())
	}

	for _, id := range lo.FindDuplicates(lo.Map(packages, func(p Package, _ int) string { return p.ID() })) {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("packages", fmt.Errorf("duplicate package id %q", id)))
	}
	for _, label := range lo.FindDuplicates(lo.Map(sizes, func(s Size, _ int) string { return s.Label() })) {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("sizes", fmt.Errorf("duplicate size label %q", label)))
	}

	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &Catalog{
		packages: append([]Package(nil), packages...),
		sizes:    append([]Size(nil), sizes...),
	}, nil
}

// Default returns the catalog the landing page launched with.
func Default() *Catalog {
	packages := []Package{
		mustPackage("1pc", "1 peça", 1, "129.90", ""),
		mustPackage("2pcs", "2 peças", 2, "169.90", ""),
		mustPackage("3pcs", "3 peças", 3, "219.90", "Melhor custo"),
		mustPackage("4pcs", "4 peças", 4, "259.90", "Mais vendido"),
	}
	sizes := []Size{
		mustSize("M", "60 – 74kg"),
		mustSize("G", "75 – 94kg"),
		mustSize("GG (2XG)", "95 – 135kg"),
	}

	c, err := NewCatalog(packages, sizes)
	if err != nil {
		panic(err)
	}
	return c
}

// Packages returns a copy of the package tiers.
func (c *Catalog) Packages() []Package {
	return append([]Package(nil), c.packages...)
}

// Sizes returns a copy of the available sizes.
func (c *Catalog) Sizes() []Size {
	return append([]Size(nil), c.sizes...)
}

// Package looks a tier up by its ID.
func (c *Catalog) Package(id string) (Package, error) {
	p, ok := lo.Find(c.packages, func(p Package) bool { return p.ID() == id })
	if !ok {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("package", fmt.Errorf("unknown package id %q", id))
	}
	return p, nil
}

// Size looks a size up by its label.
func (c *Catalog) Size(label string) (Size, error) {
	s, ok := lo.Find(c.sizes, func(s Size) bool { return s.Label() == label })
	if !ok {
		return Size{}, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("unknown size %q", label))
	}
	return s, nil
}

func mustPackage(id, name string, pieces int, price, badge string) Package {
	p, err := NewPackage(id, name, pieces, decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
	return p.WithBadge(badge)
}

func mustSize(label, weightRange string) Size {
	s, err := NewSize(label, weightRange)
	if err != nil {
		panic(err)
	}
	return s
}
