package utils

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // float64 stores 1.005 just below, rounds down
		{3.456, 3.46},
		{2.675, 2.68}, // 2.675*100 lands on the representable 267.5, rounds up
		{10, 10},
		{-1.234, -1.23},
		{0.125, 0.13},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "100", 100},
		{"decimal", "12.34", 12.34},
		{"whitespace", "  42.5 ", 42.5},
		{"empty defaults to zero", "", 0},
		{"garbage defaults to zero", "abc", 0},
		{"nan defaults to zero", "NaN", 0},
		{"inf defaults to zero", "+Inf", 0},
		{"negative allowed", "-7.2", -7.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.in); got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
