// file: internals/features/payments/transactions/service/ledger_service_test.go
package service

import (
	"testing"

	"artsfest_backend/internals/features/payments/transactions/model"
)

func tx(t, method string, amount float64) model.Transaction {
	return model.Transaction{
		TransactionType:   t,
		TransactionMethod: method,
		TransactionAmount: amount,
	}
}

func TestComputeStats(t *testing.T) {
	list := []model.Transaction{
		tx(model.TypeCredit, model.MethodUPI, 1000),
		tx(model.TypeCredit, model.MethodLiquid, 500),
		tx(model.TypeDebit, model.MethodLiquid, 200),
		tx(model.TypeDebit, model.MethodBankTransfer, 300.50),
	}

	got := ComputeStats(list)

	if got.TotalCredit != 1500 {
		t.Errorf("TotalCredit = %v, want 1500", got.TotalCredit)
	}
	if got.TotalDebit != 500.50 {
		t.Errorf("TotalDebit = %v, want 500.50", got.TotalDebit)
	}
	if got.Balance != 999.50 {
		t.Errorf("Balance = %v, want 999.50", got.Balance)
	}
	if got.ByMethod[model.MethodUPI] != 1000 {
		t.Errorf("UPI = %v, want 1000", got.ByMethod[model.MethodUPI])
	}
	if got.ByMethod[model.MethodLiquid] != 300 {
		t.Errorf("LIQUID = %v, want 300", got.ByMethod[model.MethodLiquid])
	}
	if got.ByMethod[model.MethodBankTransfer] != -300.50 {
		t.Errorf("BANK_TRANSFER = %v, want -300.50", got.ByMethod[model.MethodBankTransfer])
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil)
	if got.Balance != 0 || got.TotalCredit != 0 || got.TotalDebit != 0 {
		t.Errorf("empty ledger must be all zero, got %+v", got)
	}
	if got.ByMethod == nil {
		t.Error("ByMethod must not be nil")
	}
}
