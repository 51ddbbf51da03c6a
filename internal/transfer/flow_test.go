package transfer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sajidmehmood/demo-bank-ledger/internal/events"
	"github.com/sajidmehmood/demo-bank-ledger/internal/ledger"
	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
	eventmodels "github.com/sajidmehmood/demo-bank-ledger/internal/models/events"
	"github.com/sajidmehmood/demo-bank-ledger/internal/storage/memory"
)

// capturingPublisher records every published event.
type capturingPublisher struct {
	topics []string
	events []any
}

func (p *capturingPublisher) Publish(topic string, event any) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

// newTestFlow builds a flow over a ledger seeded with the given
// balance and an empty transaction list, plus a deterministic
// reference generator.
func newTestFlow(t *testing.T, balance string) (*Flow, *ledger.Store, *events.Bus, *capturingPublisher) {
	t.Helper()

	kv := memory.NewMemoryKVStore()
	require.NoError(t, kv.Set("transactions", "[]"))
	require.NoError(t, kv.Set("balance", balance))

	store := ledger.NewStore(kv, zap.NewNop())
	store.Initialize()

	bus := events.NewBus()
	pub := &capturingPublisher{}
	flow := NewFlow(store, bus, pub, func() string { return "TRXfixedref" }, zap.NewNop())
	return flow, store, bus, pub
}

func validInput() models.TransferInput {
	return models.TransferInput{
		RecipientName: "Dana Whitfield",
		Account:       "12345678",
		Routing:       "021000021",
		BankName:      "First Demo Bank",
		Amount:        "25.00",
	}
}

func TestValidateRejectsEmptyFields(t *testing.T) {
	flow, store, _, _ := newTestFlow(t, "100.00")

	blank := func(mutate func(*models.TransferInput)) models.TransferInput {
		in := validInput()
		mutate(&in)
		return in
	}

	cases := map[string]models.TransferInput{
		"recipient": blank(func(in *models.TransferInput) { in.RecipientName = "   " }),
		"account":   blank(func(in *models.TransferInput) { in.Account = "" }),
		"routing":   blank(func(in *models.TransferInput) { in.Routing = "\t" }),
		"bank":      blank(func(in *models.TransferInput) { in.BankName = "" }),
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := flow.Validate(in)
			require.Error(t, err)
			assert.EqualError(t, err, "Please fill all fields with valid values")
		})
	}

	// Rejection never mutates the ledger.
	assert.Empty(t, store.List(0))
	assert.Equal(t, "100", store.Balance().String())
}

func TestValidateAmountBoundaries(t *testing.T) {
	flow, _, _, _ := newTestFlow(t, "100.00")

	for _, amount := range []string{"0", "-5", "abc", ""} {
		in := validInput()
		in.Amount = amount
		_, err := flow.Validate(in)
		assert.EqualError(t, err, "Please fill all fields with valid values", "amount %q", amount)
	}

	in := validInput()
	in.Amount = "100.00"
	_, err := flow.Validate(in)
	assert.NoError(t, err, "amount equal to balance is allowed")

	in.Amount = "100.01"
	_, err = flow.Validate(in)
	assert.EqualError(t, err, "Insufficient funds for this demo transfer")
}

func TestValidateReference(t *testing.T) {
	flow, _, _, _ := newTestFlow(t, "100.00")

	req, err := flow.Validate(validInput())
	require.NoError(t, err)
	assert.Equal(t, "TRXfixedref", req.Reference, "blank reference is generated")

	in := validInput()
	in.Reference = "  TRXsupplied  "
	req, err = flow.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "TRXsupplied", req.Reference, "supplied reference is kept, trimmed")
}

func TestDefaultRefFuncFormat(t *testing.T) {
	newRef := NewRefFunc()
	for i := 0; i < 20; i++ {
		assert.Regexp(t, `^TRX[0-9a-z]{8}$`, newRef())
	}
}

func TestConfirmCommitsExactBalance(t *testing.T) {
	flow, store, bus, pub := newTestFlow(t, "100.00")

	in := validInput()
	in.Amount = "100.00"
	req, err := flow.Validate(in)
	require.NoError(t, err)

	var gotState State
	var gotReceipt *Receipt
	c := flow.OpenConfirmation(req, func(s State, r *Receipt) {
		gotState = s
		gotReceipt = r
	})
	assert.Equal(t, StateConfirming, c.State())

	bus.Publish(events.TopicConfirm, nil)

	assert.Equal(t, StateCommitted, c.State())
	assert.Equal(t, StateCommitted, gotState)
	require.NotNil(t, gotReceipt)
	assert.Equal(t, "Transfer completed successfully", gotReceipt.Message)

	assert.Equal(t, "0.00", store.Balance().StringFixed(2))

	list := store.List(0)
	require.Len(t, list, 1)
	assert.Equal(t, models.KindDebit, list[0].Kind)
	assert.Equal(t, "TRXfixedref", list[0].Reference)
	assert.True(t, list[0].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "First Demo Bank | 12345678", list[0].Counterparty)

	recent := flow.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "Dana Whitfield", recent[0].RecipientName)
	assert.NotEmpty(t, recent[0].ID)

	require.Len(t, pub.topics, 1)
	assert.Equal(t, "transfer_completed", pub.topics[0])
	evt, ok := pub.events[0].(eventmodels.TransferCompleted)
	require.True(t, ok)
	assert.Equal(t, "TRXfixedref", evt.Reference)
	assert.False(t, evt.OccurredAt.IsZero())
}

func TestCancelLeavesLedgerUntouched(t *testing.T) {
	flow, store, bus, pub := newTestFlow(t, "100.00")

	req, err := flow.Validate(validInput())
	require.NoError(t, err)

	for _, topic := range []string{events.TopicCancel, events.TopicDismiss, events.TopicEscape} {
		c := flow.OpenConfirmation(req, nil)
		bus.Publish(topic, nil)
		assert.Equal(t, StateCancelled, c.State(), "topic %s", topic)
	}

	assert.Empty(t, store.List(0))
	assert.Equal(t, "100", store.Balance().String())
	assert.Empty(t, flow.Recent())
	assert.Empty(t, pub.topics)
}

func TestRepeatedOpenCancelDetachesHandlers(t *testing.T) {
	flow, store, bus, _ := newTestFlow(t, "100.00")

	req, err := flow.Validate(validInput())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		flow.OpenConfirmation(req, nil)
		bus.Publish(events.TopicCancel, nil)
	}

	// A later unrelated event must produce no confirmation-flow side
	// effect: every handler from the five opens is gone.
	bus.Publish(events.TopicConfirm, nil)
	bus.Publish(events.TopicEscape, nil)

	assert.Empty(t, store.List(0))
	assert.Equal(t, "100", store.Balance().String())
}

func TestConfirmationOutcomeFiresOnce(t *testing.T) {
	flow, _, bus, _ := newTestFlow(t, "100.00")

	req, err := flow.Validate(validInput())
	require.NoError(t, err)

	calls := 0
	flow.OpenConfirmation(req, func(State, *Receipt) { calls++ })

	bus.Publish(events.TopicConfirm, nil)
	bus.Publish(events.TopicConfirm, nil)
	bus.Publish(events.TopicCancel, nil)

	assert.Equal(t, 1, calls)
}

func TestCloseIsIdempotent(t *testing.T) {
	flow, _, bus, _ := newTestFlow(t, "100.00")

	req, err := flow.Validate(validInput())
	require.NoError(t, err)

	c := flow.OpenConfirmation(req, nil)
	c.Close()
	assert.NotPanics(t, func() { c.Close() })

	// Closed before any outcome: events are ignored entirely.
	bus.Publish(events.TopicConfirm, nil)
	assert.Equal(t, StateConfirming, c.State())
}
