package transfer

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sajidmehmood/demo-bank-ledger/internal/events"
	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
	"github.com/sajidmehmood/demo-bank-ledger/internal/ledger"
	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
	eventmodels "github.com/sajidmehmood/demo-bank-ledger/internal/models/events"
)

// State tracks one transfer attempt through the flow.
type State int

const (
	StateValidating State = iota
	StateConfirming
	StateCommitted
	StateRejected
	StateCancelled
)

// RefFunc produces references for transfers that do not supply one.
// Injected so tests can use deterministic references.
type RefFunc func() string

// NewRefFunc returns the default generator: "TRX" plus eight random
// base-36 characters. Tokens are short and pseudo-random; collisions
// are possible and accepted.
func NewRefFunc() RefFunc {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	return func() string {
		var b strings.Builder
		b.Grow(11)
		b.WriteString("TRX")
		for i := 0; i < 8; i++ {
			b.WriteByte(alphabet[rand.IntN(len(alphabet))])
		}
		return b.String()
	}
}

// Flow drives the validate → confirm → commit state machine for
// simulated outbound transfers against a single ledger store.
type Flow struct {
	store     *ledger.Store
	bus       *events.Bus
	publisher interfaces.EventPublisher
	newRef    RefFunc
	logger    *zap.Logger

	recent []models.TransferRecord
}

func NewFlow(store *ledger.Store, bus *events.Bus, publisher interfaces.EventPublisher, newRef RefFunc, logger *zap.Logger) *Flow {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if newRef == nil {
		newRef = NewRefFunc()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		store:     store,
		bus:       bus,
		publisher: publisher,
		newRef:    newRef,
		logger:    logger,
	}
}

// Validate checks the raw form input against the current balance. On
// success the returned request carries the parsed amount and the
// supplied or generated reference; the ledger is untouched either way.
func (f *Flow) Validate(in models.TransferInput) (models.TransferRequest, error) {
	recipient := strings.TrimSpace(in.RecipientName)
	account := strings.TrimSpace(in.Account)
	routing := strings.TrimSpace(in.Routing)
	bank := strings.TrimSpace(in.BankName)

	if recipient == "" || account == "" || routing == "" || bank == "" {
		return models.TransferRequest{}, ErrFieldsRequired
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil || !amount.IsPositive() {
		return models.TransferRequest{}, ErrFieldsRequired
	}

	// amount == balance is allowed; only strictly greater is rejected.
	if amount.GreaterThan(f.store.Balance()) {
		return models.TransferRequest{}, ErrInsufficientFunds
	}

	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		ref = f.newRef()
	}

	return models.TransferRequest{
		RecipientName: recipient,
		Account:       account,
		Routing:       routing,
		BankName:      bank,
		Amount:        amount,
		Reference:     ref,
	}, nil
}

// Receipt reports a committed transfer back to the caller. The caller
// clears its form on receipt.
type Receipt struct {
	Record  models.TransferRecord
	Message string
}

// Commit records the validated transfer: a Debit is prepended to the
// ledger, the balance drops by the amount, a display record joins the
// recent-transfers list, and a completed event is published.
func (f *Flow) Commit(req models.TransferRequest) Receipt {
	tx := models.Transaction{
		Reference:    req.Reference,
		Amount:       req.Amount,
		Kind:         models.KindDebit,
		Counterparty: req.BankName + " | " + req.Account,
	}
	f.store.Append(tx)
	f.store.AdjustBalance(req.Amount.Neg())

	record := models.TransferRecord{
		ID:            uuid.New().String(),
		Reference:     req.Reference,
		RecipientName: req.RecipientName,
		Amount:        req.Amount,
	}
	f.recent = append(f.recent, record)

	evt := eventmodels.TransferCompleted{
		Reference:     req.Reference,
		RecipientName: req.RecipientName,
		BankName:      req.BankName,
		Account:       req.Account,
		Amount:        req.Amount,
		OccurredAt:    time.Now(),
	}
	if err := f.publisher.Publish("transfer_completed", evt); err != nil {
		f.logger.Warn("publishing transfer event failed", zap.Error(err))
	}

	return Receipt{
		Record:  record,
		Message: "Transfer completed successfully",
	}
}

// Recent returns a copy of the recent-transfers display list.
func (f *Flow) Recent() []models.TransferRecord {
	out := make([]models.TransferRecord, len(f.recent))
	copy(out, f.recent)
	return out
}
