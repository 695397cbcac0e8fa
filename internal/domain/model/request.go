package model

import "time"

// RequestSpec is what callers hand to the resolver: either Simple or Detailed.
type RequestSpec interface {
	rateRequest(now time.Time) (RateRequest, error)
}

// Simple is a bare currency code or "A/B" pair for the current date
// with default cache behaviour.
type Simple string

// Detailed carries the full option set. A zero Date means now.
type Detailed struct {
	Date     time.Time
	Currency string
	// ExactDate disables the fallback to an earlier day.
	ExactDate bool
	// IgnoreCache skips the cache lookup and always goes to the feed.
	IgnoreCache bool
	// DontStoreCache keeps fetched days out of the cache.
	DontStoreCache bool
}

// RateRequest is the canonical form every RequestSpec is normalized into.
type RateRequest struct {
	Date           time.Time
	Day            Day
	Current        bool
	Currency       CurrencySpec
	ExactDate      bool
	IgnoreCache    bool
	DontStoreCache bool
}

func NewRateRequest(spec RequestSpec, now time.Time) (RateRequest, error) {
	if spec == nil {
		return RateRequest{}, ErrInvalidCurrencySpec
	}
	return spec.rateRequest(now)
}

func (s Simple) rateRequest(now time.Time) (RateRequest, error) {
	currency, err := ParseCurrencySpec(string(s))
	if err != nil {
		return RateRequest{}, err
	}

	return RateRequest{
		Date:     now,
		Day:      Normalize(now),
		Current:  true,
		Currency: currency,
	}, nil
}

func (d Detailed) rateRequest(now time.Time) (RateRequest, error) {
	currency, err := ParseCurrencySpec(d.Currency)
	if err != nil {
		return RateRequest{}, err
	}

	req := RateRequest{
		Date:           d.Date,
		Current:        d.Date.IsZero(),
		Currency:       currency,
		ExactDate:      d.ExactDate,
		IgnoreCache:    d.IgnoreCache,
		DontStoreCache: d.DontStoreCache,
	}
	if req.Current {
		req.Date = now
	}
	req.Day = Normalize(req.Date)

	return req, nil
}
