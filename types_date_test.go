package finbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  Date
		err   bool
	}{
		{"2024-01-15", NewDate(2024, time.January, 15), false},
		{"2024-7-1", NewDate(2024, time.July, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"2024-03-05T10:30:00Z", NewDate(2024, time.March, 5), false},
		{"not-a-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.input)
		if (err != nil) != tc.err {
			t.Errorf("ParseDate(%q) error = %v, want error %v", tc.input, err, tc.err)
			continue
		}
		if !tc.err && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2024, time.January, 31)

	if got := d.Add(1); got != NewDate(2024, time.February, 1) {
		t.Errorf("Add(1) = %s", got)
	}
	// Month arithmetic normalizes the way time.Time does.
	if got := d.AddMonths(1); got != NewDate(2024, time.March, 2) {
		t.Errorf("AddMonths(1) = %s", got)
	}
	if got := NewDate(2024, time.February, 29).AddYears(1); got != NewDate(2025, time.March, 1) {
		t.Errorf("AddYears(1) from a leap day = %s", got)
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.June, 7)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(raw) != `"2024-06-07"` {
		t.Errorf("Marshal = %s, want \"2024-06-07\"", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestPeriod_NextPrev(t *testing.T) {
	tests := []struct {
		p    Period
		from Date
		next Date
	}{
		{Daily, NewDate(2024, time.December, 31), NewDate(2025, time.January, 1)},
		{Weekly, NewDate(2024, time.June, 3), NewDate(2024, time.June, 10)},
		{Monthly, NewDate(2024, time.January, 1), NewDate(2024, time.February, 1)},
		{Quarterly, NewDate(2024, time.October, 1), NewDate(2025, time.January, 1)},
		{Yearly, NewDate(2024, time.February, 1), NewDate(2025, time.February, 1)},
	}
	for _, tc := range tests {
		if got := tc.p.Next(tc.from); got != tc.next {
			t.Errorf("%s.Next(%s) = %s, want %s", tc.p, tc.from, got, tc.next)
		}
		if got := tc.p.Prev(tc.next); got != tc.from {
			t.Errorf("%s.Prev(%s) = %s, want %s", tc.p, tc.next, got, tc.from)
		}
	}
}

func TestDate_StartOfEndOf(t *testing.T) {
	d := NewDate(2024, time.June, 7) // a Friday

	tests := []struct {
		p     Period
		start Date
		end   Date
	}{
		{Weekly, NewDate(2024, time.June, 3), NewDate(2024, time.June, 9)},
		{Monthly, NewDate(2024, time.June, 1), NewDate(2024, time.June, 30)},
		{Quarterly, NewDate(2024, time.April, 1), NewDate(2024, time.June, 30)},
		{Yearly, NewDate(2024, time.January, 1), NewDate(2024, time.December, 31)},
	}
	for _, tc := range tests {
		if got := d.StartOf(tc.p); got != tc.start {
			t.Errorf("StartOf(%s) = %s, want %s", tc.p, got, tc.start)
		}
		if got := d.EndOf(tc.p); got != tc.end {
			t.Errorf("EndOf(%s) = %s, want %s", tc.p, got, tc.end)
		}
	}
}

func TestRange_Steps(t *testing.T) {
	r := NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.March, 10))
	var got []Date
	for d := range r.Steps(Monthly) {
		got = append(got, d)
	}
	want := []Date{
		NewDate(2024, time.January, 1),
		NewDate(2024, time.February, 1),
		NewDate(2024, time.March, 1),
	}
	if len(got) != len(want) {
		t.Fatalf("Steps() yielded %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %s, want %s", i, got[i], want[i])
		}
	}
}
