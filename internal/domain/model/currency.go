package model

import (
	"fmt"
	"strings"
)

type Currency string

// EUR is the feed's base currency. Tables carry no entry for it.
const EUR Currency = "EUR"

func (c Currency) String() string {
	return string(c)
}

// CurrencySpec is either a single code quoted against EUR or an ordered pair A/B.
type CurrencySpec struct {
	Base  Currency
	Quote Currency
}

// ParseCurrencySpec splits s on "/". Anything other than one or two
// non-empty codes is rejected before the feed is touched.
func ParseCurrencySpec(s string) (CurrencySpec, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) > 2 {
		return CurrencySpec{}, fmt.Errorf("%w: %q has more than two codes", ErrInvalidCurrencySpec, s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return CurrencySpec{}, fmt.Errorf("%w: %q", ErrInvalidCurrencySpec, s)
		}
	}

	spec := CurrencySpec{Base: Currency(strings.TrimSpace(parts[0]))}
	if len(parts) == 2 {
		spec.Quote = Currency(strings.TrimSpace(parts[1]))
	}
	return spec, nil
}

func (s CurrencySpec) IsPair() bool {
	return s.Quote != ""
}

func (s CurrencySpec) String() string {
	if s.IsPair() {
		return fmt.Sprintf("%s/%s", s.Base, s.Quote)
	}
	return s.Base.String()
}

// Rate evaluates s against one day's table: rate(A) for a single code,
// rate(A)/rate(B) for a pair. The first missing code is reported.
func (s CurrencySpec) Rate(day Day, table RateTable) (float64, error) {
	base, ok := table[s.Base]
	if !ok {
		return 0, &UnknownCurrencyError{Code: s.Base.String(), Day: day}
	}
	if !s.IsPair() {
		return base, nil
	}

	quote, ok := table[s.Quote]
	if !ok {
		return 0, &UnknownCurrencyError{Code: s.Quote.String(), Day: day}
	}
	return base / quote, nil
}
