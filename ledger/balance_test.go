package ledger

import (
	"math"
	"testing"
)

func TestEntityBalanceSignConvention(t *testing.T) {
	entity := EntityKey{Kind: ClientCompany, ID: "c1"}
	records := []Record{
		{Type: TypeIncome, Method: MethodCash, Amount: 100, Client: entity},
		{Type: TypeExpense, Method: MethodCash, Amount: 40, Client: entity},
	}

	// balance = expense - income. Negative means the business owes the entity.
	if got := Balance(records, entity); got != -60 {
		t.Errorf("Balance = %v, want -60", got)
	}

	balances := EntityBalances(records)
	if got := balances[entity]; got != -60 {
		t.Errorf("EntityBalances[c1] = %v, want -60", got)
	}
}

func TestEntityBalancesExclusions(t *testing.T) {
	company := EntityKey{Kind: ClientCompany, ID: "c1"}
	records := []Record{
		{Type: TypeExpense, Method: MethodCash, Amount: 200, Client: company},
		// Self transfer legs never reach an entity balance.
		{Type: TypeExpense, Method: MethodCash, Status: StatusSelfDeposit, Amount: 500, Client: EntityKey{Kind: ClientSelf}},
		{Type: TypeIncome, Method: MethodBank, Status: StatusSelfDeposit, Amount: 500, Client: EntityKey{Kind: ClientSelf}},
		// Self-deposit status excludes even an entity-tagged record.
		{Type: TypeIncome, Method: MethodCash, Status: StatusSelfDeposit, Amount: 50, Client: company},
		// Free-text / clientless records only exist in house totals.
		{Type: TypeIncome, Method: MethodCash, Amount: 75, Client: EntityKey{Kind: ClientOther}},
		{Type: TypeIncome, Method: MethodCash, Amount: 25},
	}

	balances := EntityBalances(records)
	if len(balances) != 1 {
		t.Fatalf("got %d balance entries, want 1: %+v", len(balances), balances)
	}
	if got := balances[company]; got != 200 {
		t.Errorf("company balance = %v, want 200 (only its plain expense counts)", got)
	}
}

func TestEntityBalancesMalformedAmount(t *testing.T) {
	entity := EntityKey{Kind: ClientEmployee, ID: "e1"}
	records := []Record{
		{Type: TypeExpense, Method: MethodCash, Amount: math.NaN(), Client: entity},
		{Type: TypeExpense, Method: MethodCash, Amount: 30, Client: entity},
	}
	if got := Balance(records, entity); got != 30 {
		t.Errorf("Balance = %v, want 30 (NaN counts as 0)", got)
	}
}

func TestSplitBalances(t *testing.T) {
	balances := map[EntityKey]float64{
		{Kind: ClientCompany, ID: "debit-big"}:    900,
		{Kind: ClientCompany, ID: "debit-small"}:  10,
		{Kind: ClientEmployee, ID: "credit-big"}:  -400,
		{Kind: ClientCompany, ID: "credit-small"}: -5,
		{Kind: ClientCompany, ID: "settled"}:      0,
	}

	debtors, creditors := SplitBalances(balances)

	if len(debtors) != 2 {
		t.Fatalf("got %d debtors, want 2", len(debtors))
	}
	if debtors[0].Key.ID != "debit-big" || debtors[1].Key.ID != "debit-small" {
		t.Errorf("debtors out of order: %+v", debtors)
	}

	if len(creditors) != 2 {
		t.Fatalf("got %d creditors, want 2", len(creditors))
	}
	if creditors[0].Key.ID != "credit-big" || creditors[1].Key.ID != "credit-small" {
		t.Errorf("creditors out of order: %+v", creditors)
	}
}

func TestSplitBalancesDeterministic(t *testing.T) {
	balances := map[EntityKey]float64{
		{Kind: ClientCompany, ID: "a"}:  50,
		{Kind: ClientCompany, ID: "b"}:  50,
		{Kind: ClientEmployee, ID: "a"}: 50,
	}

	first, _ := SplitBalances(balances)
	for i := 0; i < 5; i++ {
		again, _ := SplitBalances(balances)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: order changed at %d: %+v vs %+v", i, j, first, again)
			}
		}
	}
}
