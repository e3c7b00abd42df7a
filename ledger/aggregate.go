package ledger

// MethodTotals is the income/expense pair for one payment method.
type MethodTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Summary is the house-level reduction of a record set.
//
// FeeProfit sums the service-fee margin of expense records; it is tracked
// separately and is never part of TotalExpense. Liability-method records
// stay in their own method bucket with no extra netting rule.
type Summary struct {
	TotalIncome  float64                 `json:"total_income"`
	TotalExpense float64                 `json:"total_expense"`
	Profit       float64                 `json:"profit"`
	FeeProfit    float64                 `json:"fee_profit"`
	Methods      map[Method]MethodTotals `json:"methods"`
}

// Aggregate reduces records into house-wide totals. The reduction is a plain
// sum: re-running it over any permutation of the same records yields the
// same Summary. Malformed amounts count as zero.
func Aggregate(records []Record) Summary {
	s := Summary{Methods: make(map[Method]MethodTotals, len(Methods))}
	for _, m := range Methods {
		s.Methods[m] = MethodTotals{}
	}

	for _, r := range records {
		amt := r.amount()
		mt := s.Methods[r.Method]

		switch r.Type {
		case TypeIncome:
			s.TotalIncome += amt
			mt.Income += amt
		case TypeExpense:
			s.TotalExpense += amt
			mt.Expense += amt
			s.FeeProfit += r.serviceFee()
		default:
			continue
		}
		s.Methods[r.Method] = mt
	}

	s.Profit = s.TotalIncome - s.TotalExpense
	return s
}
