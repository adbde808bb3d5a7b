package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.5", 50, true},
		{".5", 50, true},
		{"12.344", 1234, true}, // rounds down
		{"12.345", 1235, true}, // half rounds up
		{"", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: expected %d, got %d err=%v", tc.in, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 100000}
	b := Money{Cents: 8000}
	if got := a.Sub(b).Cents; got != 92000 {
		t.Fatalf("expected 92000, got %d", got)
	}
	if got := b.Add(b).Cents; got != 16000 {
		t.Fatalf("expected 16000, got %d", got)
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{Money{Cents: 1234}, "12.34"},
		{Money{Cents: 5}, "0.05"},
		{Money{Cents: 0}, "0.00"},
		{Money{Cents: -50}, "-0.50"},
	}
	for _, tc := range cases {
		if got := tc.m.String(); got != tc.want {
			t.Fatalf("%d cents: expected %q, got %q", tc.m.Cents, tc.want, got)
		}
	}
}
