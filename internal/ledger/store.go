package ledger

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
)

// Storage keys for the three independently persisted records. The
// balance is never reconciled against the transaction list; each key
// loads and fails on its own.
const (
	keyTransactions = "transactions"
	keyBalance      = "balance"
	keyProfile      = "profile"
)

// Store owns the transaction list, the current balance, and the
// profile. It is the single source of truth for the session; every
// mutation writes through to the KV store, best-effort. Persistence
// failures are logged and swallowed, never surfaced.
type Store struct {
	kv     interfaces.KVStore
	logger *zap.Logger

	transactions []models.Transaction
	balance      decimal.Decimal
	profile      models.Profile
}

// NewStore wires a store to its persistence backend. Call Initialize
// before use.
func NewStore(kv interfaces.KVStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Initialize loads persisted state, substituting the built-in defaults
// for any record that is missing or unreadable. It never fails; the
// worst outcome of a broken record is the default value for that
// record.
func (s *Store) Initialize() {
	s.transactions = defaultTransactions()
	if raw, ok := s.read(keyTransactions); ok {
		var transactions []models.Transaction
		if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
			s.logger.Warn("stored transactions unreadable, using sample data", zap.Error(err))
		} else {
			s.transactions = transactions
		}
	}

	s.balance = defaultBalance
	if raw, ok := s.read(keyBalance); ok {
		if balance, err := decimal.NewFromString(strings.TrimSpace(raw)); err != nil {
			s.logger.Warn("stored balance is not numeric, using default", zap.Error(err))
		} else {
			s.balance = balance
		}
	}

	s.profile = defaultProfile
	if raw, ok := s.read(keyProfile); ok {
		var profile models.Profile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			s.logger.Warn("stored profile unreadable, using default", zap.Error(err))
		} else {
			s.profile = profile
		}
	}
}

// read fetches one record, treating every read failure like a missing
// key. Only unexpected errors are logged; absence is normal on first
// run.
func (s *Store) read(key string) (string, bool) {
	raw, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			s.logger.Warn("reading stored record failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return raw, true
}

// List returns the transactions in order, newest first, capped to the
// first limit entries when limit > 0.
func (s *Store) List(limit int) []models.Transaction {
	n := len(s.transactions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Transaction, n)
	copy(out, s.transactions[:n])
	return out
}

// Search returns the transactions whose reference or decimal-formatted
// amount contains query as a case-insensitive substring, order
// preserved. An empty query matches everything.
func (s *Store) Search(query string) []models.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List(0)
	}

	out := make([]models.Transaction, 0)
	for _, t := range s.transactions {
		if strings.Contains(strings.ToLower(t.Reference), q) ||
			strings.Contains(strings.ToLower(t.Amount.String()), q) {
			out = append(out, t)
		}
	}
	return out
}

// Append prepends tx to the ledger and persists. Duplicate references
// are allowed; no deduplication happens here.
func (s *Store) Append(tx models.Transaction) {
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	s.Persist()
}

// AdjustBalance applies delta and rounds the result to two decimal
// places, then persists. Rounding on every adjustment keeps repeated
// small deltas from accumulating sub-cent drift.
func (s *Store) AdjustBalance(delta decimal.Decimal) {
	s.balance = s.balance.Add(delta).Round(2)
	s.Persist()
}

// AddDemo prepends a generated demo transaction: even 1-based
// positions get a randomized Credit, odd get a fixed 950 Debit. The
// balance is intentionally untouched.
func (s *Store) AddDemo() models.Transaction {
	idx := len(s.transactions) + 1
	tx := models.Transaction{
		Reference: "TRXdemo" + randomBase36(10),
		Amount:    decimal.NewFromInt(950),
		Kind:      models.KindDebit,
	}
	if idx%2 == 0 {
		tx.Amount = decimal.NewFromInt(100000 + rand.Int64N(1000000))
		tx.Kind = models.KindCredit
	}

	s.Append(tx)
	return tx
}

// Balance returns the current balance.
func (s *Store) Balance() decimal.Decimal {
	return s.balance
}

// Profile returns the current profile.
func (s *Store) Profile() models.Profile {
	return s.profile
}

// UpdateProfile replaces the profile and persists it under its own key.
func (s *Store) UpdateProfile(p models.Profile) {
	s.profile = p

	data, err := json.Marshal(p)
	if err != nil {
		s.logger.Warn("serializing profile failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(keyProfile, string(data)); err != nil {
		s.logger.Warn("persisting profile failed", zap.Error(err))
	}
}

// Persist writes the transaction list and the balance as two
// independent records. A failure on either write is logged and
// swallowed; in-memory state stays authoritative for the session.
func (s *Store) Persist() {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		s.logger.Warn("serializing transactions failed", zap.Error(err))
	} else if err := s.kv.Set(keyTransactions, string(data)); err != nil {
		s.logger.Warn("persisting transactions failed", zap.Error(err))
	}

	if err := s.kv.Set(keyBalance, s.balance.String()); err != nil {
		s.logger.Warn("persisting balance failed", zap.Error(err))
	}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}
