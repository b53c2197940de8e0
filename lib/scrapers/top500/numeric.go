package top500

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	Integer Kind = iota
	Float
)

// NumberFormat is the separator convention raw values are parsed with.
// The site publishes en-US formatted numbers; the format is injected
// rather than read from process-wide locale state.
type NumberFormat struct {
	Thousands rune
	Decimal   rune
}

var EnUS = NumberFormat{Thousands: ',', Decimal: '.'}

// Normalize cleans up a raw table value declared numeric and returns
// int64 or float64 per kind, nil for a leading minus sign (negative
// values never occur in this dataset, a minus marks a data defect in
// the source), or the raw text unchanged when no number leads it so
// the caller can log the anomaly.
func (f NumberFormat) Normalize(kind Kind, raw string) any {
	if strings.HasPrefix(raw, "-") {
		return nil
	}

	run := f.leadingNumber(raw)
	if run == "" {
		return raw
	}

	cleaned := strings.ReplaceAll(run, string(f.Thousands), "")
	if f.Decimal != '.' {
		cleaned = strings.ReplaceAll(cleaned, string(f.Decimal), ".")
	}

	switch kind {
	case Integer:
		value, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return raw
		}
		return value
	default:
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return raw
		}
		return value
	}
}

// leadingNumber returns the longest leading run of digits, thousands
// separators and decimal points.
func (f NumberFormat) leadingNumber(raw string) string {
	end := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			if r != f.Thousands && r != f.Decimal {
				break
			}
		}
		end += len(string(r))
	}
	return raw[:end]
}

// ParseInt parses a required integer cell, trailing units tolerated.
func (f NumberFormat) ParseInt(raw string) (int64, error) {
	value, ok := f.Normalize(Integer, strings.TrimSpace(raw)).(int64)
	if !ok {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return value, nil
}

// ParseFloat parses a required float cell, trailing units tolerated.
func (f NumberFormat) ParseFloat(raw string) (float64, error) {
	value, ok := f.Normalize(Float, strings.TrimSpace(raw)).(float64)
	if !ok {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return value, nil
}
