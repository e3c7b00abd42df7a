package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"zaad-backend/ledger"
)

// Record is a single income or expense transaction. The client union
// (company XOR employee XOR self XOR free-text other) is enforced at the
// DTO boundary; at most one branch is ever populated.
type Record struct {
	Id     string  `json:"id" gorm:"primaryKey"`
	Type   string  `json:"type" gorm:"type:VARCHAR(10);not null;index"`   // income | expense
	Method string  `json:"method" gorm:"type:VARCHAR(20);not null;index"` // ledger.Methods
	Status string  `json:"status" gorm:"type:VARCHAR(20);index"`          // closed set, see ledger.Status
	Amount float64 `json:"amount" gorm:"type:numeric(12,2)"`

	// ServiceFee is the margin on an expense record; signed, excluded from
	// expense totals.
	ServiceFee float64 `json:"service_fee" gorm:"type:numeric(12,2)"`

	CompanyId  *string `json:"company_id" gorm:"index"`
	EmployeeId *string `json:"employee_id" gorm:"index"`
	Self       bool    `json:"self"`
	OtherName  string  `json:"other_name"` // ad-hoc client captured by name only

	Date       time.Time `json:"date" gorm:"index"`
	Particular string    `json:"particular"`
	InvoiceNo  string    `json:"invoice_no"`
	Suffix     string    `json:"suffix"`
	Number     string    `json:"number"`
	Remarks    string    `json:"remarks"`

	// TransferId links the two legs of a self-deposit pair.
	TransferId string `json:"transfer_id,omitempty" gorm:"index"`

	Edited    bool      `json:"edited"`
	CreatedAt time.Time `json:"created_at"`
}

func (record *Record) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	record.Id = uuid.NewString()
	return
}

// Ledger maps the stored row onto the aggregation view.
func (record *Record) Ledger() ledger.Record {
	return ledger.Record{
		Type:       ledger.RecordType(record.Type),
		Method:     ledger.Method(record.Method),
		Status:     ledger.Status(record.Status),
		Amount:     record.Amount,
		ServiceFee: record.ServiceFee,
		Client:     record.ClientKey(),
		Date:       record.Date,
	}
}

// ClientKey resolves the populated branch of the client union.
func (record *Record) ClientKey() ledger.EntityKey {
	switch {
	case record.Self:
		return ledger.EntityKey{Kind: ledger.ClientSelf}
	case record.CompanyId != nil && *record.CompanyId != "":
		return ledger.EntityKey{Kind: ledger.ClientCompany, ID: *record.CompanyId}
	case record.EmployeeId != nil && *record.EmployeeId != "":
		return ledger.EntityKey{Kind: ledger.ClientEmployee, ID: *record.EmployeeId}
	case record.OtherName != "":
		return ledger.EntityKey{Kind: ledger.ClientOther}
	default:
		return ledger.EntityKey{}
	}
}

// LedgerRecords converts a slice of rows for aggregation.
func LedgerRecords(records []Record) []ledger.Record {
	out := make([]ledger.Record, len(records))
	for i := range records {
		out[i] = records[i].Ledger()
	}
	return out
}

// RecordRevision is an immutable pre-edit snapshot of a record, written
// whenever the record is updated.
type RecordRevision struct {
	Id         uint           `json:"id" gorm:"primaryKey"`
	RecordId   string         `json:"record_id" gorm:"index:idx_record_revisions_record_id_revision_no,unique,priority:1"`
	RevisionNo int            `json:"revision_no" gorm:"not null;index:idx_record_revisions_record_id_revision_no,unique,priority:2"`
	Snapshot   datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
}
