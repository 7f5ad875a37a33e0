package utils

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeCompressedPayload tests the DecodeCompressedPayload function.
func TestDecodeCompressedPayload(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		original := []byte(`{"memberId":"m-1","balance":1234.56}`)

		var compressed bytes.Buffer

		writer := zlib.NewWriter(&compressed)
		_, err := writer.Write(original)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())

		decoded, err := DecodeCompressedPayload(encoded)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("invalid base64", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeCompressedPayload("not-base64!!!")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base64")
	})

	t.Run("valid base64 but not compressed", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("plain text"))

		_, err := DecodeCompressedPayload(encoded)
		require.Error(t, err)
	})
}
