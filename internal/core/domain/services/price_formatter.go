package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders amounts with the currency symbol of the shop locale,
// e.g. "R$ 169.90" for BRL.
type PriceFormatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewPriceFormatter returns a formatter for unit in the tag locale.
func NewPriceFormatter(unit currency.Unit, tag language.Tag) PriceFormatter {
	return PriceFormatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
}

// Currency returns the ISO currency of the formatter.
func (f PriceFormatter) Currency() currency.Unit {
	return f.unit
}

// Format rounds amount to the currency minor units and prints it with its symbol.
func (f PriceFormatter) Format(amount decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(f.unit)
	value, _ := amount.Round(int32(scale)).Float64()
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(value)))
}
