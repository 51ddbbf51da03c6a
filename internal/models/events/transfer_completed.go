package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCompleted is published after a transfer commits to the ledger.
type TransferCompleted struct {
	Reference     string          `json:"reference"`
	RecipientName string          `json:"recipient_name"`
	BankName      string          `json:"bank_name"`
	Account       string          `json:"account"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
