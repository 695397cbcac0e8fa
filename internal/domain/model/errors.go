package model

import (
	"errors"
	"fmt"
)

var (
	ErrTransport           = errors.New("rate feed unreachable")
	ErrParse               = errors.New("malformed rate feed")
	ErrNoData              = errors.New("no rate data for date")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrInvalidCurrencySpec = errors.New("invalid currency specifier")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// UnknownCurrencyError names the code missing from the resolved day's table.
type UnknownCurrencyError struct {
	Code string
	Day  Day
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %s on %s", e.Code, e.Day)
}

func (e *UnknownCurrencyError) Is(target error) bool {
	return target == ErrUnknownCurrency
}
