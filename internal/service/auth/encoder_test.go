package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubKeyStore is a local KeyStore stand-in for in-package tests.
type stubKeyStore struct {
	key string
	err error
}

func (s *stubKeyStore) Get(_ context.Context) (string, error) {
	return s.key, s.err
}

func (s *stubKeyStore) Refresh(_ context.Context) (string, error) {
	return s.key, s.err
}

func TestCredentialEncoder_Encode(t *testing.T) {
	t.Parallel()

	encoder := NewCredentialEncoder(&stubKeyStore{key: StaticPublicKey})

	encoded, err := encoder.Encode(t.Context(), "hunter2")
	require.NoError(t, err)

	// RSA output has the modulus size, 128 bytes for a 1024-bit key.
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Len(t, raw, 128)
}

func TestCredentialEncoder_EncodeIsRandomized(t *testing.T) {
	t.Parallel()

	encoder := NewCredentialEncoder(&stubKeyStore{key: StaticPublicKey})

	first, err := encoder.Encode(t.Context(), "hunter2")
	require.NoError(t, err)

	second, err := encoder.Encode(t.Context(), "hunter2")
	require.NoError(t, err)

	// PKCS #1 v1.5 padding is random, equal inputs must not repeat.
	assert.NotEqual(t, first, second)
}

func TestCredentialEncoder_KeyStoreError(t *testing.T) {
	t.Parallel()

	keyErr := errors.New("boom")
	encoder := NewCredentialEncoder(&stubKeyStore{err: keyErr})

	_, err := encoder.Encode(t.Context(), "hunter2")
	require.ErrorIs(t, err, keyErr)
}

func TestCredentialEncoder_InvalidKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{
			name: "not PEM at all",
			key:  "clearly not a key",
		},
		{
			name: "PEM block with garbage inside",
			key: string(pem.EncodeToMemory(&pem.Block{
				Type:  "PUBLIC KEY",
				Bytes: []byte("garbage"),
			})),
		},
		{
			name: "valid key of the wrong kind",
			key:  ecdsaPublicKeyPEM(t),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoder := NewCredentialEncoder(&stubKeyStore{key: tt.key})

			_, err := encoder.Encode(t.Context(), "hunter2")
			require.ErrorIs(t, err, ErrInvalidPublicKey)
		})
	}
}

func ecdsaPublicKeyPEM(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	raw, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: raw}))
}
