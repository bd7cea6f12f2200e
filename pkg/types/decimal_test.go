package types

import (
	"errors"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    Decimal
		wantErr bool
	}{
		{"3.50", 350, false},
		{"3.5", 350, false},
		{"3", 300, false},
		{"0", 0, false},
		{"0.05", 5, false},
		{".5", 50, false},
		{"12.", 1200, false},
		{"-2.25", -225, false},
		{"+1.10", 110, false},
		{"  4.75 ", 475, false},
		{"3.505", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{".", 0, true},
		{"1.2.3", 0, true},
		{"1,5", 0, true},
		{"--5", 0, true},
		{"+-5", 0, true},
		{"-+5", 0, true},
		{"3.-5", 0, true},
		{"3.+5", 0, true},
		{"1-2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimal(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDecimal(%q) succeeded, want error", tt.in)
				}
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("error %v does not wrap ErrInvalidNumber", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimal(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDecimal(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecimalString(t *testing.T) {
	tests := []struct {
		in   Decimal
		want string
	}{
		{350, "3.50"},
		{300, "3.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-225, "-2.25"},
		{123456, "1234.56"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Decimal(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// "3.5" in must come back out as "3.50"; normalization is idempotent.
func TestDecimalRoundTripNormalizes(t *testing.T) {
	d, err := ParseDecimal("3.5")
	if err != nil {
		t.Fatalf("ParseDecimal failed: %v", err)
	}
	if d.String() != "3.50" {
		t.Fatalf("got %q, want %q", d.String(), "3.50")
	}
	again, err := ParseDecimal(d.String())
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if again != d {
		t.Errorf("round trip changed value: %d != %d", again, d)
	}
}

func TestDecimalScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Decimal
	}{
		{"string", "7.25", 725},
		{"bytes", []byte("7.25"), 725},
		{"int64", int64(7), 700},
		{"float64", 7.25, 725},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decimal
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%v) failed: %v", tt.src, err)
			}
			if d != tt.want {
				t.Errorf("Scan(%v) = %d, want %d", tt.src, d, tt.want)
			}
		})
	}

	var d Decimal
	if err := d.Scan(true); err == nil {
		t.Error("Scan(bool) should fail")
	}
}

func TestDecimalValue(t *testing.T) {
	v, err := Decimal(350).Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "3.50" {
		t.Errorf("Value() = %v, want %q", v, "3.50")
	}
}
