// file: internals/features/payments/transactions/service/ledger_service.go
package service

import (
	"artsfest_backend/internals/features/payments/transactions/model"
)

// LedgerStats adalah ringkasan kas: saldo = total masuk - total keluar.
type LedgerStats struct {
	TotalCredit float64            `json:"total_credit"`
	TotalDebit  float64            `json:"total_debit"`
	Balance     float64            `json:"balance"`
	ByMethod    map[string]float64 `json:"by_method"`
}

// ComputeStats menghitung ringkasan dari daftar transaksi.
// ByMethod memegang saldo bersih per metode pembayaran.
func ComputeStats(list []model.Transaction) LedgerStats {
	stats := LedgerStats{ByMethod: map[string]float64{}}
	for i := range list {
		t := &list[i]
		switch t.TransactionType {
		case model.TypeCredit:
			stats.TotalCredit += t.TransactionAmount
			stats.ByMethod[t.TransactionMethod] += t.TransactionAmount
		case model.TypeDebit:
			stats.TotalDebit += t.TransactionAmount
			stats.ByMethod[t.TransactionMethod] -= t.TransactionAmount
		}
	}
	stats.Balance = stats.TotalCredit - stats.TotalDebit
	return stats
}
