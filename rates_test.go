package finbook

import (
	"strings"
	"testing"
)

func TestLoadRateTable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"plain form",
			`{"base": "USD", "date": "2024-06-01", "rates": {"EUR": 0.9, "GBP": 0.8}}`,
		},
		{
			"conversion_rates form",
			`{"result": "success", "base_code": "USD", "conversion_rates": {"EUR": 0.9, "GBP": 0.8}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rt, err := LoadRateTable(strings.NewReader(tc.doc))
			if err != nil {
				t.Fatalf("LoadRateTable() error = %v", err)
			}
			if rt.Base != "USD" {
				t.Errorf("Base = %s, want USD", rt.Base)
			}
			if !rt.Rate("EUR").Equal(d("0.9")) {
				t.Errorf("Rate(EUR) = %s, want 0.9", rt.Rate("EUR"))
			}
		})
	}
}

func TestLoadRateTable_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no base", `{"rates": {"EUR": 0.9}}`},
		{"no rates", `{"base": "USD"}`},
		{"bad base", `{"base": "DOLLARS", "rates": {"EUR": 0.9}}`},
		{"non-numeric rate", `{"base": "USD", "rates": {"EUR": "much"}}`},
		{"not json", `rates: EUR 0.9`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadRateTable(strings.NewReader(tc.doc)); err == nil {
				t.Error("LoadRateTable() accepted a bad snapshot")
			}
		})
	}
}

func TestRateTable_Convert(t *testing.T) {
	rt, err := LoadRateTable(strings.NewReader(`{"base": "USD", "rates": {"EUR": 0.5, "GBP": 0.25}}`))
	if err != nil {
		t.Fatalf("LoadRateTable() error = %v", err)
	}

	// 10 EUR -> 20 USD -> 5 GBP.
	if got := rt.Convert(d("10"), "EUR", "USD"); !got.Equal(d("20")) {
		t.Errorf("Convert(10 EUR, USD) = %s, want 20", got)
	}
	if got := rt.Convert(d("10"), "EUR", "GBP"); !got.Equal(d("5")) {
		t.Errorf("Convert(10 EUR, GBP) = %s, want 5", got)
	}
	// Same currency and unknown currencies pass through at face value.
	if got := rt.Convert(d("7"), "USD", "USD"); !got.Equal(d("7")) {
		t.Errorf("Convert(7 USD, USD) = %s, want 7", got)
	}
	if got := rt.Convert(d("7"), "XXX", "USD"); !got.Equal(d("7")) {
		t.Errorf("Convert(7 XXX, USD) = %s, want 7", got)
	}
}
