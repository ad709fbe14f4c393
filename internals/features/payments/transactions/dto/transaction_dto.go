// file: internals/features/payments/transactions/dto/transaction_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"artsfest_backend/internals/features/payments/transactions/model"
)

/* ===== Requests ===== */

type CreateTransactionRequest struct {
	Type        string  `json:"type"        validate:"required,oneof=CREDIT DEBIT"`
	Method      string  `json:"method"      validate:"required,oneof=LIQUID UPI BANK_TRANSFER"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=3"`
	// format YYYY-MM-DD; kosong = hari ini
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	// bukti bebas bentuk (no. kuitansi, penyetor, dst.)
	Meta json.RawMessage `json:"meta,omitempty"`
}

func (r *CreateTransactionRequest) ToModel(createdBy uuid.UUID) *model.Transaction {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if r.Date != "" {
		if d, err := time.Parse("2006-01-02", r.Date); err == nil {
			date = d
		}
	}
	m := &model.Transaction{
		TransactionType:        r.Type,
		TransactionMethod:      r.Method,
		TransactionAmount:      r.Amount,
		TransactionDescription: r.Description,
		TransactionDate:        date,
		TransactionCreatedBy:   createdBy,
	}
	if len(r.Meta) > 0 {
		m.TransactionMeta = datatypes.JSON(r.Meta)
	}
	return m
}

/* ===== Responses ===== */

type TransactionResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Type          string    `json:"type"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	Meta          json.RawMessage `json:"meta,omitempty"`
}

func FromModel(m *model.Transaction) *TransactionResponse {
	return &TransactionResponse{
		TransactionID: m.TransactionID,
		Type:          m.TransactionType,
		Method:        m.TransactionMethod,
		Amount:        m.TransactionAmount,
		Description:   m.TransactionDescription,
		Date:          m.TransactionDate.Format("2006-01-02"),
		CreatedBy:     m.TransactionCreatedBy,
		CreatedAt:     m.TransactionCreatedAt,
		Meta:          json.RawMessage(m.TransactionMeta),
	}
}

func FromModels(list []model.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
