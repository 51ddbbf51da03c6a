package postgres

import (
	"database/sql"

	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
)

// PostgresKVStore backs interfaces.KVStore with a kv(key, value) table.
// Opt-in storage backend; the caller owns the *sql.DB and should have
// registered the lib/pq driver.
type PostgresKVStore struct {
	db *sql.DB
}

func NewPostgresKVStore(db *sql.DB) *PostgresKVStore {
	return &PostgresKVStore{
		db: db,
	}
}

// EnsureSchema creates the kv table when it does not exist yet.
func (p *PostgresKVStore) EnsureSchema() error {
	const query = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`

	_, err := p.db.Exec(query)
	return err
}

func (p *PostgresKVStore) Get(key string) (string, error) {
	const query = `SELECT value FROM kv WHERE key = $1`

	var value string
	err := p.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", interfaces.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (p *PostgresKVStore) Set(key, value string) error {
	const query = `INSERT INTO kv (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := p.db.Exec(query, key, value)
	return err
}

func (p *PostgresKVStore) Delete(key string) error {
	const query = `DELETE FROM kv WHERE key = $1`

	_, err := p.db.Exec(query, key)
	return err
}

var _ interfaces.KVStore = (*PostgresKVStore)(nil)
