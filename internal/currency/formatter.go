package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format returns the plain decimal string when formatted is false.
func (f *Formatter) Format(amount decimal.Decimal, formatted bool) string {
	if !formatted {
		return amount.String()
	}
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}

func (f *Formatter) Code() string {
	return f.unit.String()
}
