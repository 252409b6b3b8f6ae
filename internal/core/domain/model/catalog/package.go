package catalog

import (
	"errors"
	"fmt"
	"strings"

	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPackageIsNotConstructed is returned when a Package was not created through NewPackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is a purchasable tier: a number of pieces sold together for one price.
//
// Invariants:
//   - ID and name are non-empty
//   - pieces is greater than 0
//   - price is not negative
//
// Example:
//
//	pkg, err := catalog.NewPackage("2pcs", "2 peças", 2, decimal.RequireFromString("169.90"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pkg.PricePerPiece()) // 84.95
type Package struct {
	id     string
	name   string
	pieces int
	price  decimal.Decimal
	badge  string
	guard  guard.ConstructorGuard
}

// NewPackage validates and creates a Package.
func NewPackage(id, name string, pieces int, price decimal.Decimal) (Package, error) {
	p := Package{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPieces(pieces),
		p.setPrice(price),
	); err != nil {
		return Package{}, err
	}

	return p, nil
}

// WithBadge returns a copy of the package carrying a short promotional badge.
func (p Package) WithBadge(badge string) Package {
	p.badge = strings.TrimSpace(badge)
	return p
}

func (p Package) ID() string             { return p.id }
func (p Package) Name() string           { return p.name }
func (p Package) Pieces() int            { return p.pieces }
func (p Package) Price() decimal.Decimal { return p.price }
func (p Package) Badge() string          { return p.badge }

// PricePerPiece is the package price divided by its piece count, rounded to cents.
func (p Package) PricePerPiece() decimal.Decimal {
	if p.pieces == 0 {
		return decimal.Zero
	}
	return p.price.Div(decimal.NewFromInt(int64(p.pieces))).Round(2)
}

// Validate reports whether the package was built through NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p *Package) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("package id")
	}
	p.id = id
	return nil
}

func (p *Package) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("package name")
	}
	p.name = name
	return nil
}

func (p *Package) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces is invalid", fmt.Errorf("%d is not greater than 0", pieces))
	}
	p.pieces = pieces
	return nil
}

func (p *Package) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is negative", price.String()))
	}
	p.price = price
	return nil
}
