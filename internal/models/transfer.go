package models

import "github.com/shopspring/decimal"

// TransferInput is the raw form payload before validation. Amount is
// the user-entered text, parsed during validation.
type TransferInput struct {
	RecipientName string
	Account       string
	Routing       string
	BankName      string
	Amount        string
	Reference     string
}

// TransferRequest represents a transfer that passed validation. It
// carries the parsed amount and the supplied or generated reference.
type TransferRequest struct {
	RecipientName string
	Account       string
	Routing       string
	BankName      string
	Amount        decimal.Decimal
	Reference     string
}

// TransferRecord is the display record kept in the recent-transfers
// list after a transfer commits.
type TransferRecord struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	RecipientName string          `json:"recipient_name"`
	Amount        decimal.Decimal `json:"amount"`
}
