package catalog

import (
	"errors"
	"strings"

	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

// ErrSizeIsNotConstructed is returned when a Size was not created through NewSize.
var ErrSizeIsNotConstructed = errors.New("Size must be created via NewSize constructor")

// Size is a garment size label with the body weight range it is recommended for.
// The label is what an order stores, e.g. "GG (2XG)".
type Size struct {
	label       string
	weightRange string
	guard       guard.ConstructorGuard
}

// NewSize creates a Size. The label is required, the weight range is display text.
func NewSize(label, weightRange string) (Size, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Size{}, errs.NewValueIsRequiredError("size label")
	}

	return Size{
		label:       label,
		weightRange: strings.TrimSpace(weightRange),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (s Size) Label() string       { return s.label }
func (s Size) WeightRange() string { return s.weightRange }

// Validate reports whether the size was built through NewSize.
func (s Size) Validate() error {
	return s.guard.Validate(ErrSizeIsNotConstructed)
}
