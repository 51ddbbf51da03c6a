package view

import (
	"github.com/shopspring/decimal"

	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
	"github.com/sajidmehmood/demo-bank-ledger/internal/money"
)

// maxRows caps the rendered table, matching the page's display limit.
const maxRows = 50

// Row is one rendered table line.
type Row struct {
	Index     int
	Reference string
	Amount    string
	Kind      models.Kind
}

// Model is the fully rendered view of a ledger snapshot. Amounts are
// display strings; the underlying decimals never appear here.
type Model struct {
	Rows    []Row
	Count   int
	Balance string
	Profile models.Profile
}

// Project renders an already-filtered transaction list plus balance
// and profile into a view model. Pure projection: nothing here mutates
// the ledger, and the result is safe to hand to any surface.
func Project(transactions []models.Transaction, balance decimal.Decimal, profile models.Profile, f *money.Formatter) Model {
	if len(transactions) > maxRows {
		transactions = transactions[:maxRows]
	}

	rows := make([]Row, len(transactions))
	for i, t := range transactions {
		rows[i] = Row{
			Index:     i + 1,
			Reference: t.Reference,
			Amount:    f.Format(t.Amount),
			Kind:      t.Kind,
		}
	}

	return Model{
		Rows:    rows,
		Count:   len(rows),
		Balance: f.Format(balance),
		Profile: profile,
	}
}
