package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
)

// defaultBalance is the opening balance used when no valid balance is
// persisted.
var defaultBalance = decimal.RequireFromString("71799032.65")

// defaultProfile is the demo identity used when no valid profile is
// persisted.
var defaultProfile = models.Profile{
	Name:  "Alex Morgan",
	Email: "alex.morgan@example.com",
	Phone: "+1 555 010 2345",
}

// defaultTransactions returns the built-in sample ledger used when no
// valid transaction list is persisted. The duplicate reference on the
// last two entries is deliberate; references are not unique.
func defaultTransactions() []models.Transaction {
	return []models.Transaction{
		{Reference: "TRXb96e73c741a5", Amount: decimal.NewFromInt(950), Kind: models.KindDebit},
		{Reference: "TRXa9f71f16f6d1", Amount: decimal.RequireFromString("10200950.00"), Kind: models.KindCredit},
		{Reference: "TRX093aee8d2ebb", Amount: decimal.NewFromInt(950), Kind: models.KindDebit},
		{Reference: "TRX8fe0a45d176a", Amount: decimal.RequireFromString("10200950.00"), Kind: models.KindCredit},
		{Reference: "TRX749ffdd2a9a5", Amount: decimal.NewFromInt(950), Kind: models.KindDebit},
		{Reference: "TRX9de8249b2ec5", Amount: decimal.RequireFromString("10200950.00"), Kind: models.KindCredit},
		{Reference: "TRXad68d66d15f0", Amount: decimal.NewFromInt(950), Kind: models.KindDebit},
		{Reference: "TRXc5b2f62f3611", Amount: decimal.RequireFromString("10200950.00"), Kind: models.KindCredit},
		{Reference: "TRXc5b2f62f3611", Amount: decimal.RequireFromString("31000000.00"), Kind: models.KindCredit},
	}
}
