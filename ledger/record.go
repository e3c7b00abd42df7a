package ledger

import (
	"math"
	"time"
)

// RecordType discriminates the two transaction directions.
type RecordType string

const (
	TypeIncome  RecordType = "income"
	TypeExpense RecordType = "expense"
)

// Method is the payment channel a record moves through.
type Method string

const (
	MethodCash       Method = "cash"
	MethodBank       Method = "bank"
	MethodTasdeed    Method = "tasdeed"
	MethodSwiper     Method = "swiper"
	MethodLiability  Method = "liability"
	MethodServiceFee Method = "service fee"
)

// Methods is the closed set of recognized payment methods, in display order.
var Methods = []Method{MethodCash, MethodBank, MethodTasdeed, MethodSwiper, MethodLiability, MethodServiceFee}

// Status is the closed set of record statuses. These used to be free-form
// labels; aggregation now matches on the enumeration instead of raw strings.
type Status string

const (
	StatusAdvance     Status = "Advance"
	StatusCredit      Status = "Credit"
	StatusReadyCash   Status = "Ready Cash"
	StatusProfit      Status = "Profit"
	StatusDebit       Status = "Debit"
	StatusLiability   Status = "liability"
	StatusSelfDeposit Status = "Self Deposit"
)

// ClientKind tags the populated branch of a record's client union.
type ClientKind string

const (
	ClientNone     ClientKind = ""
	ClientCompany  ClientKind = "company"
	ClientEmployee ClientKind = "employee"
	ClientSelf     ClientKind = "self"
	ClientOther    ClientKind = "other"
)

// EntityKey identifies a balance counterparty. Only company and employee
// kinds ever appear as balance keys; self and other records have no entity.
type EntityKey struct {
	Kind ClientKind `json:"kind"`
	ID   string     `json:"id"`
}

// Record is the view of a transaction the aggregation functions operate on.
// It is deliberately decoupled from the persistence model.
type Record struct {
	Type       RecordType
	Method     Method
	Status     Status
	Amount     float64
	ServiceFee float64
	Client     EntityKey
	Date       time.Time
}

// amount returns the record amount guarded against NaN/Inf so a single
// malformed record degrades to zero instead of poisoning every total.
func (r Record) amount() float64 {
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return 0
	}
	return r.Amount
}

func (r Record) serviceFee() float64 {
	if math.IsNaN(r.ServiceFee) || math.IsInf(r.ServiceFee, 0) {
		return 0
	}
	return r.ServiceFee
}

// internal reports whether the record is a house-account transfer leg.
// Internal records count toward method totals but never toward any
// per-entity balance.
func (r Record) internal() bool {
	return r.Status == StatusSelfDeposit || r.Client.Kind == ClientSelf
}

// hasEntity reports whether the record can contribute to a per-entity balance.
func (r Record) hasEntity() bool {
	if r.internal() {
		return false
	}
	return (r.Client.Kind == ClientCompany || r.Client.Kind == ClientEmployee) && r.Client.ID != ""
}
