package store

import (
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoragePrefixesKeys(t *testing.T) {
	backend := memory.New()
	defer backend.Close()
	storage := NewKVStorage(backend, "session:")

	require.NoError(t, storage.Set("abc", []byte("data"), time.Minute))

	val, err := storage.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), val)

	raw, err := backend.Get("session:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), raw)

	raw, err = backend.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, storage.Delete("abc"))
	val, err = storage.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, val)
}
