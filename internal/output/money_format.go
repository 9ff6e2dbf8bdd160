package output

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnsupportedLocale is returned when no number symbols are known for a locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "es-ES"

// MoneyFormatter renders a monetary amount for display.
// Implementations must be pure and safe for concurrent use.
type MoneyFormatter interface {
	FormatMoney(amount decimal.Decimal, symbol string) (string, error)
}

// MoneyFormatterFunc adapts an ordinary function to MoneyFormatter.
type MoneyFormatterFunc func(amount decimal.Decimal, symbol string) (string, error)

func (f MoneyFormatterFunc) FormatMoney(amount decimal.Decimal, symbol string) (string, error) {
	return f(amount, symbol)
}

type numberSymbols struct {
	decimal string
	group   string
}

// CommonLocales lists a few locales shown in help output. Any tag with CLDR
// number data and Latin digits is accepted by NewLocaleFormatter.
var CommonLocales = []string{"es-ES", "en-US", "en-GB", "de-DE", "de-CH", "fr-FR", "it-IT", "pt-BR", "es-AR", "es-MX"}

// sentinel is rendered once per locale; its separators are read back as the
// locale's group and decimal symbols.
const sentinel = 1234567.5

// lookupSymbols reads the CLDR group and decimal symbols for tag from x/text.
func lookupSymbols(tag language.Tag) (numberSymbols, error) {
	s := message.NewPrinter(tag).Sprint(number.Decimal(sentinel, number.Scale(2)))

	var seps []string
	var cur strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if r > unicode.MaxASCII {
				return numberSymbols{}, fmt.Errorf("%w: %s uses native digits", ErrUnsupportedLocale, tag)
			}
			if cur.Len() > 0 {
				seps = append(seps, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		return numberSymbols{}, fmt.Errorf("%w: %s: unexpected number layout %q", ErrUnsupportedLocale, tag, s)
	}

	switch len(seps) {
	case 1:
		return numberSymbols{decimal: seps[0]}, nil
	case 3:
		if seps[0] != seps[1] || seps[0] == seps[2] {
			return numberSymbols{}, fmt.Errorf("%w: %s: unexpected number layout %q", ErrUnsupportedLocale, tag, s)
		}
		return numberSymbols{decimal: seps[2], group: seps[0]}, nil
	}
	return numberSymbols{}, fmt.Errorf("%w: %s: unexpected number layout %q", ErrUnsupportedLocale, tag, s)
}

// LocaleFormatter formats money with two fraction digits, grouped thousands
// and a trailing currency symbol, using the separators of one locale.
// The zero value has no locale and always fails.
type LocaleFormatter struct {
	tag     language.Tag
	symbols numberSymbols
}

// NewLocaleFormatter resolves a BCP 47 tag (e.g. "es-ES") to its CLDR number
// symbols. Tags whose language cannot be determined with at least high
// confidence are rejected rather than matched to a neighbour.
func NewLocaleFormatter(locale string) (LocaleFormatter, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return LocaleFormatter{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
	}
	if _, conf := tag.Base(); conf < language.High {
		return LocaleFormatter{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	symbols, err := lookupSymbols(tag)
	if err != nil {
		return LocaleFormatter{}, err
	}
	return LocaleFormatter{tag: tag, symbols: symbols}, nil
}

// MustLocaleFormatter is like NewLocaleFormatter but panics on error.
func MustLocaleFormatter(locale string) LocaleFormatter {
	f, err := NewLocaleFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the parsed locale tag.
func (f LocaleFormatter) Locale() string { return f.tag.String() }

// FormatMoney rounds amount to cents (ties to even) and renders it with the
// locale's separators. Thousands are always grouped, including four-digit
// amounts.
func (f LocaleFormatter) FormatMoney(amount decimal.Decimal, symbol string) (string, error) {
	if f.symbols.decimal == "" {
		return "", fmt.Errorf("%w: no locale configured", ErrUnsupportedLocale)
	}
	s := amount.StringFixedBank(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupDigits(intPart, f.symbols.group) + f.symbols.decimal + frac + symbol, nil
}

// groupDigits inserts sep every three digits from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
