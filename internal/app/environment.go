package app

import (
	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/realtime"
	"github.com/tradexhq/passport-cli/internal/service/auth"
	"github.com/tradexhq/passport-cli/internal/store"
	"github.com/tradexhq/passport-cli/internal/utils"
)

// environment bundles everything an interactive command needs:
// the API client, the auth flows, the client-side stores, and the
// post-auth synchronizer over all of them.
type environment struct {
	cfg          *config.Config
	tokens       *store.TokenSource
	client       passport.Client
	auth         auth.Service
	sessions     *store.SessionStore
	userInfo     *store.UserInfoStore
	messages     *store.MessageStore
	notifier     realtime.Notifier
	synchronizer auth.Synchronizer
}

// newEnvironment builds the full component graph from the configuration.
func newEnvironment(cfg *config.Config) (*environment, error) {
	tokens := store.NewTokenSource(cfg.AuthToken)
	deviceIDs := utils.NewRandomDeviceIDProvider()

	client, err := passport.NewClient(cfg, tokens, deviceIDs)
	if err != nil {
		return nil, err
	}

	keys := auth.NewKeyStore(client, cfg.UseStaticKey)
	encoder := auth.NewCredentialEncoder(keys)
	dispatcher := auth.NewCodeDispatcher(client, cfg.ParsedResendCooldown, cfg.ValidateDestinations)
	authService := auth.NewService(cfg, client, encoder, dispatcher)

	sessions := store.NewSessionStore()
	userInfo := store.NewUserInfoStore(client, tokens)
	messages := store.NewMessageStore(client, userInfo)

	// Realtime announcements are optional, an empty socket URL disables them.
	var notifier realtime.Notifier
	if cfg.SocketURL != "" {
		notifier = realtime.NewSocketNotifier(cfg.SocketURL)
	}

	synchronizer := auth.NewSynchronizer(sessions, userInfo, messages, notifier)

	return &environment{
		cfg:          cfg,
		tokens:       tokens,
		client:       client,
		auth:         authService,
		sessions:     sessions,
		userInfo:     userInfo,
		messages:     messages,
		notifier:     notifier,
		synchronizer: synchronizer,
	}, nil
}

// Close releases the environment's long-lived resources.
func (e *environment) Close() {
	if e.notifier != nil {
		//nolint:errcheck // Shutdown path, a failed socket close is not actionable.
		_ = e.notifier.Close()
	}
}
