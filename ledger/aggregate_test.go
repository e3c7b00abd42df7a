package ledger

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestAggregateTotals(t *testing.T) {
	records := []Record{
		{Type: TypeIncome, Method: MethodCash, Amount: 1000},
		{Type: TypeIncome, Method: MethodBank, Amount: 250},
		{Type: TypeExpense, Method: MethodBank, Amount: 300, ServiceFee: 50},
		{Type: TypeExpense, Method: MethodSwiper, Amount: 120, ServiceFee: -20},
	}

	s := Aggregate(records)

	if s.TotalIncome != 1250 {
		t.Errorf("TotalIncome = %v, want 1250", s.TotalIncome)
	}
	if s.TotalExpense != 420 {
		t.Errorf("TotalExpense = %v, want 420", s.TotalExpense)
	}
	if s.Profit != 830 {
		t.Errorf("Profit = %v, want 830", s.Profit)
	}
	// Service fee margin is its own figure, never part of expense totals.
	if s.FeeProfit != 30 {
		t.Errorf("FeeProfit = %v, want 30", s.FeeProfit)
	}
	if got := s.Methods[MethodCash].Income; got != 1000 {
		t.Errorf("cash income = %v, want 1000", got)
	}
	if got := s.Methods[MethodBank].Expense; got != 300 {
		t.Errorf("bank expense = %v, want 300", got)
	}
	if got := s.Methods[MethodTasdeed]; got != (MethodTotals{}) {
		t.Errorf("tasdeed totals = %+v, want zero", got)
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	records := []Record{
		{Type: TypeIncome, Method: MethodCash, Amount: 100},
		{Type: TypeExpense, Method: MethodBank, Amount: 40, ServiceFee: 5},
		{Type: TypeIncome, Method: MethodTasdeed, Amount: 7},
		{Type: TypeExpense, Method: MethodCash, Amount: 13},
		{Type: TypeIncome, Method: MethodSwiper, Amount: 900},
	}

	want := Aggregate(records)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled)
		if got.TotalIncome != want.TotalIncome || got.TotalExpense != want.TotalExpense ||
			got.Profit != want.Profit || got.FeeProfit != want.FeeProfit {
			t.Fatalf("permutation %d changed totals: got %+v, want %+v", i, got, want)
		}
		for _, m := range Methods {
			if got.Methods[m] != want.Methods[m] {
				t.Fatalf("permutation %d changed %s totals", i, m)
			}
		}
	}
}

func TestAggregateMalformedAmounts(t *testing.T) {
	records := []Record{
		{Type: TypeIncome, Method: MethodCash, Amount: math.NaN()},
		{Type: TypeExpense, Method: MethodBank, Amount: math.Inf(1), ServiceFee: math.NaN()},
		{Type: TypeIncome, Method: MethodCash, Amount: 10},
	}

	s := Aggregate(records)

	if s.TotalIncome != 10 {
		t.Errorf("TotalIncome = %v, want 10 (malformed amounts count as 0)", s.TotalIncome)
	}
	if s.TotalExpense != 0 {
		t.Errorf("TotalExpense = %v, want 0", s.TotalExpense)
	}
	if s.FeeProfit != 0 {
		t.Errorf("FeeProfit = %v, want 0", s.FeeProfit)
	}
}

func TestAggregateInstantProfit(t *testing.T) {
	records := []Record{
		{Type: TypeIncome, Method: MethodCash, Status: StatusProfit, Amount: 75},
	}

	s := Aggregate(records)
	if s.TotalIncome != 75 || s.Profit != 75 {
		t.Errorf("instant profit: income=%v profit=%v, want 75/75", s.TotalIncome, s.Profit)
	}
}

func TestAggregateSelfDepositMethodTotals(t *testing.T) {
	// A 500 cash->bank self deposit: expense leg on cash, income leg on bank.
	records := []Record{
		{Type: TypeExpense, Method: MethodCash, Status: StatusSelfDeposit, Amount: 500, Client: EntityKey{Kind: ClientSelf}},
		{Type: TypeIncome, Method: MethodBank, Status: StatusSelfDeposit, Amount: 500, Client: EntityKey{Kind: ClientSelf}},
	}

	s := Aggregate(records)

	if got := s.Methods[MethodCash].Expense; got != 500 {
		t.Errorf("cash expense = %v, want 500", got)
	}
	if got := s.Methods[MethodBank].Income; got != 500 {
		t.Errorf("bank income = %v, want 500", got)
	}
	// The transfer nets to zero at the house level.
	if s.Profit != 0 {
		t.Errorf("Profit = %v, want 0", s.Profit)
	}
}

// The company A scenario: income 1000 cash, expense 300 bank with fee 50.
func TestEndToEndScenario(t *testing.T) {
	companyA := EntityKey{Kind: ClientCompany, ID: "a"}
	records := []Record{
		{Type: TypeIncome, Method: MethodCash, Amount: 1000, Client: companyA, Date: time.Now()},
		{Type: TypeExpense, Method: MethodBank, Amount: 300, ServiceFee: 50, Client: companyA, Date: time.Now()},
	}

	s := Aggregate(records)
	if got := s.Methods[MethodCash].Income; got != 1000 {
		t.Errorf("cashIncome = %v, want 1000", got)
	}
	if got := s.Methods[MethodBank].Expense; got != 300 {
		t.Errorf("bankExpense = %v, want 300 (fee excluded)", got)
	}
	if s.FeeProfit != 50 {
		t.Errorf("FeeProfit = %v, want 50", s.FeeProfit)
	}

	if got := Balance(records, companyA); got != -700 {
		t.Errorf("balance(A) = %v, want -700 (business owes the company)", got)
	}
}
