package models

import "github.com/shopspring/decimal"

// Kind says which side of the balance a transaction hits.
type Kind string

const (
	KindDebit  Kind = "Debit"
	KindCredit Kind = "Credit"
)

// Transaction is a single ledger entry. Entries are immutable once
// created and are only ever prepended to the ledger; references are
// not required to be unique.
type Transaction struct {
	Reference    string          `json:"ref"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         Kind            `json:"type"`
	Counterparty string          `json:"to,omitempty"`
}
