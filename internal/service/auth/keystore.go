package auth

//go:generate $MOCKGEN -source=keystore.go -destination=mocks/keystore_mock.go

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/logger"
)

// StaticPublicKey is the baked-in credential encryption key, used when
// the environment is configured to skip the public key endpoint.
const StaticPublicKey = `-----BEGIN PUBLIC KEY-----
MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQCyquvk0x8gSEUF6CM4HDZlg58p
2bWZVJYD5WTFoeiyq5e+WkzurQnaQeKwOE2sU5bAaKJIlohf/3WiPC2RFGgjRrBF
awNwQl00qCfGXNf3RnkNVID0fXfNpI3G7b1/RemR6Yf9pZfyVFcO2wHCY71TvBpR
SjSmy0vOyTzll8dsgQIDAQAB
-----END PUBLIC KEY-----`

// publicKeyFetchGroup is the singleflight key for public key fetches.
const publicKeyFetchGroup = "public-key"

// KeyStore supplies the PEM public key used for credential encryption.
// A fetched key stays cached until Refresh is called explicitly.
type KeyStore interface {
	// Get returns the cached key, fetching it on first use.
	Get(ctx context.Context) (string, error)
	// Refresh fetches a fresh key from the server and replaces the cache.
	Refresh(ctx context.Context) (string, error)
}

// KeyStoreImpl implements KeyStore on top of the member API.
// Concurrent first-use fetches collapse into a single request.
type KeyStoreImpl struct {
	// client is the member API client.
	client passport.Client
	// useStatic pins the store to StaticPublicKey, skipping the endpoint.
	useStatic bool
	// group collapses concurrent fetches into one request.
	group singleflight.Group
	// mu protects cached.
	mu sync.RWMutex
	// cached is the last fetched key, empty before first use.
	cached string
}

// NewKeyStore creates a key store backed by the given API client.
func NewKeyStore(client passport.Client, useStatic bool) *KeyStoreImpl {
	return &KeyStoreImpl{
		client:    client,
		useStatic: useStatic,
	}
}

// Get returns the cached key, fetching it on first use.
func (s *KeyStoreImpl) Get(ctx context.Context) (string, error) {
	if s.useStatic {
		return StaticPublicKey, nil
	}

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != "" {
		return cached, nil
	}

	return s.fetch(ctx)
}

// Refresh fetches a fresh key from the server and replaces the cache.
func (s *KeyStoreImpl) Refresh(ctx context.Context) (string, error) {
	if s.useStatic {
		return StaticPublicKey, nil
	}

	return s.fetch(ctx)
}

func (s *KeyStoreImpl) fetch(ctx context.Context) (string, error) {
	key, err, shared := s.group.Do(publicKeyFetchGroup, func() (any, error) {
		fetched, fetchErr := s.client.FetchPublicKey(ctx)
		if fetchErr != nil {
			return "", fetchErr
		}

		s.mu.Lock()
		s.cached = fetched
		s.mu.Unlock()

		return fetched, nil
	})
	if err != nil {
		return "", err
	}

	if shared {
		logger.Debugf(ctx, "Public key fetch shared with a concurrent caller")
	}

	//nolint:forcetypeassert // The group closure always returns a string.
	return key.(string), nil
}
