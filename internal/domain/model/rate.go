package model

import (
	"slices"
	"time"
)

// RateTable maps a currency code to the number of its units per 1 EUR
// on one day. Tables are not modified after they are stored.
type RateTable map[Currency]float64

// Batch holds every day contained in one feed response.
type Batch map[Day]RateTable

func (b Batch) Lookup(day Day) (RateTable, bool) {
	table, ok := b[day]
	return table, ok
}

func (b Batch) Before(day Day) (Day, RateTable, bool) {
	best := InvalidDay
	for d := range b {
		if d < day && d > best {
			best = d
		}
	}
	if best == InvalidDay {
		return InvalidDay, nil, false
	}
	return best, b[best], true
}

// Days returns the batch's days in ascending order.
func (b Batch) Days() []Day {
	days := make([]Day, 0, len(b))
	for d := range b {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

type Quote struct {
	Currency      string    `json:"currency"`
	Rate          float64   `json:"rate"`
	RequestedDate time.Time `json:"requested_date"`
	RateDate      time.Time `json:"rate_date"`
	Fallback      bool      `json:"fallback"`
}

type ConversionRequest struct {
	FromCurrency Currency  `json:"from_currency"`
	ToCurrency   Currency  `json:"to_currency"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date,omitempty"`
	ExactDate    bool      `json:"exact_date,omitempty"`
}

type ConversionResult struct {
	FromCurrency Currency  `json:"from_currency"`
	ToCurrency   Currency  `json:"to_currency"`
	FromAmount   float64   `json:"from_amount"`
	ToAmount     float64   `json:"to_amount"`
	Rate         float64   `json:"rate"`
	Date         time.Time `json:"date"`
}
