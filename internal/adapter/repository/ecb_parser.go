package repository

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ecb-rates/internal/domain/model"
)

type envelope struct {
	XMLName xml.Name  `xml:"Envelope"`
	Days    []dayCube `xml:"Cube>Cube"`
}

type dayCube struct {
	Time  string     `xml:"time,attr"`
	Rates []rateCube `xml:"Cube"`
}

type rateCube struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// ParseFeed decodes a eurofxref envelope into one table per day.
// Any malformed day fails the whole feed so nothing partial is cached.
func ParseFeed(r io.Reader) (model.Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", model.ErrParse, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return nil, fmt.Errorf("%w: not an XML document", model.ErrParse)
	}

	var env envelope
	if err := xml.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrParse, err)
	}

	if len(env.Days) == 0 {
		return nil, fmt.Errorf("%w: feed has no rate days", model.ErrParse)
	}

	batch := make(model.Batch, len(env.Days))
	for _, cube := range env.Days {
		day, err := model.ParseDay(cube.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: bad day %q: %w", model.ErrParse, cube.Time, err)
		}

		table := make(model.RateTable, len(cube.Rates))
		for _, rc := range cube.Rates {
			code := strings.TrimSpace(rc.Currency)
			if code == "" {
				return nil, fmt.Errorf("%w: missing currency on %s", model.ErrParse, day)
			}
			rate, err := strconv.ParseFloat(strings.TrimSpace(rc.Rate), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad rate for %s on %s: %w", model.ErrParse, code, day, err)
			}
			table[model.Currency(code)] = rate
		}

		batch[day] = table
	}

	return batch, nil
}
