package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
)

func TestSetGetDelete(t *testing.T) {
	s := NewMemoryKVStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	require.NoError(t, s.Set("profile", `{"name":"Alex"}`))
	v, err := s.Get("profile")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Alex"}`, v)

	require.NoError(t, s.Set("profile", `{"name":"Dana"}`))
	v, _ = s.Get("profile")
	assert.Equal(t, `{"name":"Dana"}`, v)

	require.NoError(t, s.Delete("profile"))
	_, err = s.Get("profile")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	s := NewMemoryKVStore()
	assert.NoError(t, s.Delete("never set"))
}
