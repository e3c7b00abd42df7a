package utils

import "testing"

type patchDTO struct {
	Name    *string  `json:"name"`
	Amount  *float64 `json:"amount"`
	Skipped *string  `json:"-"`
	NoTag   *string
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdatesFromPtrDTO(t *testing.T) {
	in := patchDTO{
		Name:    strPtr("acme"),
		Skipped: strPtr("x"),
		NoTag:   strPtr("y"),
	}

	got := UpdatesFromPtrDTO(&in, nil)

	if len(got) != 1 {
		t.Fatalf("got %d keys, want 1: %+v", len(got), got)
	}
	if got["name"] != "acme" {
		t.Errorf("name = %v, want acme", got["name"])
	}
}

func TestUpdatesFromPtrDTORenames(t *testing.T) {
	in := patchDTO{Amount: f64Ptr(12.5)}

	got := UpdatesFromPtrDTO(&in, map[string]string{"amount": "total_amount"})

	if got["total_amount"] != 12.5 {
		t.Errorf("renamed key missing: %+v", got)
	}
	if _, ok := got["amount"]; ok {
		t.Errorf("original key should be renamed away: %+v", got)
	}
}

func TestNormalizePtrDTO(t *testing.T) {
	in := patchDTO{
		Name:   strPtr("  padded  "),
		Amount: f64Ptr(3.456),
	}

	NormalizePtrDTO(&in)

	if *in.Name != "padded" {
		t.Errorf("Name = %q, want trimmed", *in.Name)
	}
	if *in.Amount != 3.46 {
		t.Errorf("Amount = %v, want 3.46", *in.Amount)
	}
	if in.Skipped != nil {
		t.Errorf("nil fields must stay nil")
	}
}

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"5", 1, 5},
		{" 7 ", 1, 7},
		{"", 3, 3},
		{"abc", 3, 3},
		{"-2", 3, 3}, // negatives fall back
	}
	for _, tt := range tests {
		if got := ParseIntDefault(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseIntDefault(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}
