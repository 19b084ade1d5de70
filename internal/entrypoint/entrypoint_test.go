package entrypoint

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSRFSecret(t *testing.T) {
	t.Run("generates when empty", func(t *testing.T) {
		secret, err := loadCSRFSecret("")
		require.NoError(t, err)
		assert.Len(t, secret, csrfKeyLength)
	})

	t.Run("decodes hex", func(t *testing.T) {
		raw := strings.Repeat("ab", csrfKeyLength)
		secret, err := loadCSRFSecret(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, hex.EncodeToString(secret))
	})

	t.Run("accepts raw bytes", func(t *testing.T) {
		secret, err := loadCSRFSecret(strings.Repeat("k", csrfKeyLength))
		require.NoError(t, err)
		assert.Len(t, secret, csrfKeyLength)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := loadCSRFSecret("short")
		assert.Error(t, err)
	})
}
