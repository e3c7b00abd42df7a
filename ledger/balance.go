package ledger

import "sort"

// EntityBalance pairs a counterparty with its derived balance.
//
// Sign convention: balance = sum(expense) - sum(income) for the entity.
// Positive means the entity owes the business (debit); negative means the
// business owes the entity (credit). The dashboards color-code on exactly
// this sign, so it must not be flipped to the everyday accounting one.
type EntityBalance struct {
	Key     EntityKey `json:"key"`
	Balance float64   `json:"balance"`
}

// EntityBalances reduces records into a per-entity balance map.
// Self-deposit legs and records without a company/employee reference
// contribute nothing here; they only exist in house-wide totals.
func EntityBalances(records []Record) map[EntityKey]float64 {
	balances := make(map[EntityKey]float64)
	for _, r := range records {
		if !r.hasEntity() {
			continue
		}
		switch r.Type {
		case TypeExpense:
			balances[r.Client] += r.amount()
		case TypeIncome:
			balances[r.Client] -= r.amount()
		}
	}
	return balances
}

// Balance returns the derived balance for a single entity.
func Balance(records []Record, key EntityKey) float64 {
	var total float64
	for _, r := range records {
		if !r.hasEntity() || r.Client != key {
			continue
		}
		switch r.Type {
		case TypeExpense:
			total += r.amount()
		case TypeIncome:
			total -= r.amount()
		}
	}
	return total
}

// SplitBalances buckets balances into the debit (> 0) and credit (< 0)
// lists. Zero balances appear in neither. Both lists come back sorted by
// magnitude descending, ties broken by key, so repeated calls render the
// same order.
func SplitBalances(balances map[EntityKey]float64) (debtors, creditors []EntityBalance) {
	for key, bal := range balances {
		switch {
		case bal > 0:
			debtors = append(debtors, EntityBalance{Key: key, Balance: bal})
		case bal < 0:
			creditors = append(creditors, EntityBalance{Key: key, Balance: bal})
		}
	}
	sortByMagnitude(debtors)
	sortByMagnitude(creditors)
	return debtors, creditors
}

func sortByMagnitude(list []EntityBalance) {
	sort.Slice(list, func(i, j int) bool {
		a, b := abs(list[i].Balance), abs(list[j].Balance)
		if a != b {
			return a > b
		}
		if list[i].Key.Kind != list[j].Key.Kind {
			return list[i].Key.Kind < list[j].Key.Kind
		}
		return list[i].Key.ID < list[j].Key.ID
	})
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
