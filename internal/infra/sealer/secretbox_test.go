package sealer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func TestSealOpen(t *testing.T) {
	var key [KeySize]byte
	key[0] = 7
	box := New(key)

	sealed, err := box.Seal([]byte(`{"id":"x"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), `"id"`)

	plain, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"x"}`, string(plain))
}

func TestOpen_WrongKeyOrTampered(t *testing.T) {
	var k1, k2 [KeySize]byte
	k2[31] = 1

	sealed, err := New(k1).Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = New(k2).Open(sealed)
	assert.True(t, errors.Is(err, ErrOpen))

	sealed[len(sealed)-1] ^= 0xff
	_, err = New(k1).Open(sealed)
	assert.True(t, errors.Is(err, ErrOpen))

	_, err = New(k1).Open([]byte("short"))
	assert.True(t, errors.Is(err, ErrOpen))
}

func TestLoadOrCreateKey_PersistsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".numdna", "secret.key")

	first, err := LoadOrCreateKey(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	sealed, err := first.Seal([]byte("history"))
	require.NoError(t, err)

	second, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	plain, err := second.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "history", string(plain))
}

func TestLoadOrCreateKey_RejectsMalformedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(path, []byte("abcd\n"), 0o600))

	_, err := LoadOrCreateKey(path)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}
