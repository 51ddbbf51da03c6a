package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts as grouped, two-decimal USD strings, e.g.
// "$71,799,032.65". Display only; stored and serialized values stay
// raw decimals.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter() *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return f.printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
