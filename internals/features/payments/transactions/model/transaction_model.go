// file: internals/features/payments/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeCredit = "CREDIT"
	TypeDebit  = "DEBIT"

	MethodLiquid       = "LIQUID"
	MethodUPI          = "UPI"
	MethodBankTransfer = "BANK_TRANSFER"
)

// Transaction adalah satu entri kas festival (pemasukan/pengeluaran).
type Transaction struct {
	TransactionID uuid.UUID `json:"transaction_id" gorm:"column:transaction_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// CREDIT | DEBIT
	TransactionType string `json:"transaction_type" gorm:"column:transaction_type;type:varchar(10);not null;index"`
	// LIQUID | UPI | BANK_TRANSFER
	TransactionMethod      string    `json:"transaction_method"      gorm:"column:transaction_method;type:varchar(20);not null"`
	TransactionAmount      float64   `json:"transaction_amount"      gorm:"column:transaction_amount;type:numeric(12,2);not null"`
	TransactionDescription string    `json:"transaction_description" gorm:"column:transaction_description;type:text;not null"`
	TransactionDate        time.Time `json:"transaction_date"        gorm:"column:transaction_date;type:date;not null"`
	TransactionCreatedBy   uuid.UUID `json:"transaction_created_by"  gorm:"column:transaction_created_by;type:uuid;not null"`
	// Info bukti bebas bentuk: no. kuitansi, nama penyetor, dst.
	TransactionMeta datatypes.JSON `json:"transaction_meta,omitempty" gorm:"column:transaction_meta;type:jsonb"`

	TransactionCreatedAt time.Time `json:"transaction_created_at" gorm:"column:transaction_created_at;type:timestamptz;not null;default:now()"`
	TransactionUpdatedAt time.Time `json:"transaction_updated_at" gorm:"column:transaction_updated_at;type:timestamptz;not null;default:now()"`
}

func (Transaction) TableName() string { return "transactions" }

func (m *Transaction) BeforeUpdate(tx *gorm.DB) error {
	m.TransactionUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeByType(t string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("transaction_type = ?", t)
	}
}
