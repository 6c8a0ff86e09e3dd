package finbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// RateTable holds exchange rates quoted against a single base currency: the
// rate for a currency is how many of its units one unit of the base buys.
type RateTable struct {
	Base  string
	Rates map[string]decimal.Decimal
}

// Rate returns the quoted rate for a currency. The base itself, and any
// unquoted currency, convert at 1: a table never blocks a computation, it
// just degrades to face value.
func (rt RateTable) Rate(currency string) decimal.Decimal {
	if r, ok := rt.Rates[currency]; ok && !r.IsZero() {
		return r
	}
	return decimal.New(1, 0)
}

// Convert converts an amount between two currencies through the base. It
// satisfies ConvertFunc.
func (rt RateTable) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	inBase := amount.Div(rt.Rate(from))
	return inBase.Mul(rt.Rate(to))
}

// DefaultRates returns the identity table: every currency converts at face
// value. Useful when no snapshot file is configured.
func DefaultRates(base string) RateTable {
	return RateTable{Base: base, Rates: map[string]decimal.Decimal{}}
}

// LoadRateTable reads an exchange-rate snapshot in the layout used by the
// common public rate APIs. Two shapes are accepted:
//
//	{"base": "USD", "rates": {"EUR": 0.92, ...}}
//	{"base_code": "USD", "conversion_rates": {"EUR": 0.92, ...}}
//
// Probing by path keeps the loader tolerant of the extra metadata fields
// those APIs wrap around the payload.
func LoadRateTable(r io.Reader) (RateTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return RateTable{}, fmt.Errorf("reading rate snapshot: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return RateTable{}, fmt.Errorf("parsing rate snapshot: %w", err)
	}

	base, err := probeString(doc, "$.base", "$.base_code")
	if err != nil {
		return RateTable{}, err
	}
	if err := ValidateCurrency(base); err != nil {
		return RateTable{}, fmt.Errorf("rate snapshot base: %w", err)
	}

	rates, err := probeRates(doc, "$.rates", "$.conversion_rates")
	if err != nil {
		return RateTable{}, err
	}
	return RateTable{Base: base, Rates: rates}, nil
}

func probeString(doc interface{}, paths ...string) (string, error) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, doc)
		if err != nil {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s, nil
		}
	}
	return "", fmt.Errorf("rate snapshot has none of %v", paths)
}

func probeRates(doc interface{}, paths ...string) (map[string]decimal.Decimal, error) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, doc)
		if err != nil {
			continue
		}
		obj, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		rates := make(map[string]decimal.Decimal, len(obj))
		for cur, raw := range obj {
			f, ok := raw.(float64)
			if !ok {
				return nil, fmt.Errorf("rate for %s is not a number", cur)
			}
			rates[cur] = decimal.NewFromFloat(f)
		}
		return rates, nil
	}
	return nil, fmt.Errorf("rate snapshot has none of %v", paths)
}
