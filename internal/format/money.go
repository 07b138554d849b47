// Package format renders prices for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySuffix = " ₽"

type Formatter struct {
	printer *message.Printer
}

// New builds a Formatter for a BCP 47 locale tag such as "ru" or "en".
// Unparseable tags fall back to Russian.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Russian
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Money groups thousands for the locale and appends the rouble sign.
func (f *Formatter) Money(amount int) string {
	return f.printer.Sprintf("%d", amount) + CurrencySuffix
}

// Number groups thousands without a currency.
func (f *Formatter) Number(n int) string {
	return f.printer.Sprintf("%d", n)
}
