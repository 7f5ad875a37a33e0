package auth

//go:generate $MOCKGEN -source=encoder.go -destination=mocks/encoder_mock.go

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// CredentialEncoder encrypts credentials for transmission.
type CredentialEncoder interface {
	// Encode encrypts a secret with the current public key and returns it base64-encoded.
	Encode(ctx context.Context, secret string) (string, error)
}

// CredentialEncoderImpl encrypts credentials with RSA PKCS #1 v1.5,
// matching what the server expects from the web client.
type CredentialEncoderImpl struct {
	// keys supplies the PEM public key.
	keys KeyStore
}

// NewCredentialEncoder creates an encoder backed by the given key store.
func NewCredentialEncoder(keys KeyStore) *CredentialEncoderImpl {
	return &CredentialEncoderImpl{keys: keys}
}

// Encode encrypts a secret with the current public key and returns it base64-encoded.
func (e *CredentialEncoderImpl) Encode(ctx context.Context, secret string) (string, error) {
	pemKey, err := e.keys.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain public key: %w", err)
	}

	publicKey, err := parseRSAPublicKey(pemKey)
	if err != nil {
		return "", err
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, []byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt credential: %w", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// parseRSAPublicKey decodes a PEM block and extracts an RSA public key.
func parseRSAPublicKey(pemKey string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemKey))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPublicKey)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err) //nolint:errorlint // The sentinel must be the matched error.
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}

	return publicKey, nil
}
