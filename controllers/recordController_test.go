package controllers

import (
	"testing"
	"time"

	"zaad-backend/ledger"
)

func TestClientBranches(t *testing.T) {
	companyID := "11111111-1111-4111-8111-111111111111"
	employeeID := "22222222-2222-4222-8222-222222222222"

	tests := []struct {
		name string
		dto  RecordCreateDTO
		want int
	}{
		{"none", RecordCreateDTO{}, 0},
		{"company only", RecordCreateDTO{CompanyId: &companyID}, 1},
		{"employee only", RecordCreateDTO{EmployeeId: &employeeID}, 1},
		{"self only", RecordCreateDTO{Self: true}, 1},
		{"other only", RecordCreateDTO{OtherName: "walk-in"}, 1},
		{"blank other does not count", RecordCreateDTO{OtherName: "   "}, 0},
		{"company and self", RecordCreateDTO{CompanyId: &companyID, Self: true}, 2},
		{"all four", RecordCreateDTO{CompanyId: &companyID, EmployeeId: &employeeID, Self: true, OtherName: "x"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dto.clientBranches(); got != tt.want {
				t.Errorf("clientBranches() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidMethod(t *testing.T) {
	for _, m := range ledger.Methods {
		if !validMethod(string(m)) {
			t.Errorf("validMethod(%q) = false, want true", m)
		}
	}
	for _, m := range []string{"", "cheque", "CASH", "servicefee"} {
		if validMethod(m) {
			t.Errorf("validMethod(%q) = true, want false", m)
		}
	}
}

func TestValidStatuses(t *testing.T) {
	known := []string{"Advance", "Credit", "Ready Cash", "Profit", "Debit", "liability", "Self Deposit"}
	for _, s := range known {
		if !validStatuses[s] {
			t.Errorf("status %q should be recognized", s)
		}
	}
	if validStatuses["profit"] {
		t.Error("status matching is case sensitive")
	}
}

func TestParseDateOrNow(t *testing.T) {
	got := parseDateOrNow("2024-03-05")
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDateOrNow = %v, want %v", got, want)
	}

	before := time.Now()
	got = parseDateOrNow("")
	if got.Before(before.Add(-time.Second)) || got.After(time.Now().Add(time.Second)) {
		t.Errorf("empty date should default to now, got %v", got)
	}

	got = parseDateOrNow("garbage")
	if got.Before(before.Add(-time.Second)) || got.After(time.Now().Add(time.Second)) {
		t.Errorf("unparsable date should default to now, got %v", got)
	}
}
