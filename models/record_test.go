package models

import (
	"testing"

	"zaad-backend/ledger"
)

func TestRecordClientKey(t *testing.T) {
	companyID := "c1"
	employeeID := "e1"
	empty := ""

	tests := []struct {
		name   string
		record Record
		want   ledger.EntityKey
	}{
		{"company", Record{CompanyId: &companyID}, ledger.EntityKey{Kind: ledger.ClientCompany, ID: "c1"}},
		{"employee", Record{EmployeeId: &employeeID}, ledger.EntityKey{Kind: ledger.ClientEmployee, ID: "e1"}},
		{"self wins over company", Record{Self: true, CompanyId: &companyID}, ledger.EntityKey{Kind: ledger.ClientSelf}},
		{"other by name", Record{OtherName: "walk-in"}, ledger.EntityKey{Kind: ledger.ClientOther}},
		{"empty pointer is no client", Record{CompanyId: &empty}, ledger.EntityKey{}},
		{"nothing", Record{}, ledger.EntityKey{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.ClientKey(); got != tt.want {
				t.Errorf("ClientKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecordLedgerMapping(t *testing.T) {
	companyID := "c1"
	r := Record{
		Type:       "expense",
		Method:     "bank",
		Status:     "Credit",
		Amount:     300,
		ServiceFee: 50,
		CompanyId:  &companyID,
	}

	lr := r.Ledger()
	if lr.Type != ledger.TypeExpense || lr.Method != ledger.MethodBank || lr.Status != ledger.StatusCredit {
		t.Errorf("enum mapping wrong: %+v", lr)
	}
	if lr.Amount != 300 || lr.ServiceFee != 50 {
		t.Errorf("amount mapping wrong: %+v", lr)
	}
	if lr.Client != (ledger.EntityKey{Kind: ledger.ClientCompany, ID: "c1"}) {
		t.Errorf("client mapping wrong: %+v", lr.Client)
	}
}
