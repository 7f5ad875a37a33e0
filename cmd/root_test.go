package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/constants"
)

const testBaseConfigContent = `
base_url: "https://api.example.com"
auth_token: "config_token"
default_sms_area: "86"
resend_cooldown: "60s"
request_timeout: "30s"
validate_destinations: true
use_static_key: false
log_level: "info"
`

// loadTestConfig writes the given YAML to a temp file and loads it.
func loadTestConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	viper.Reset()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(configPath, []byte(content), constants.DefaultFilePermissions) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// newFlagTestCommand creates a command carrying the bindable flags.
func newFlagTestCommand() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}
	testCmd.Flags().String("base-url", "", "member API base URL")
	testCmd.Flags().String("area", "", "dialing area code")
	testCmd.Flags().Bool("static-key", false, "use the baked-in public key")

	return testCmd
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://api.example.com", cfg.BaseURL)
				assert.Equal(t, "86", cfg.DefaultSMSArea)
				assert.False(t, cfg.UseStaticKey)
			},
		},
		{
			name: "base-url flag overrides config",
			flags: map[string]string{
				"base-url": "https://staging.example.com",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
			},
		},
		{
			name: "area flag overrides config",
			flags: map[string]string{
				"area": "55",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "55", cfg.DefaultSMSArea)
			},
		},
		{
			name: "static-key flag overrides config",
			flags: map[string]string{
				"static-key": "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.UseStaticKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newFlagTestCommand()

			for name, value := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(name, value))
			}

			require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		flagName    string
		flagValue   string
		expectedErr error
	}{
		{
			name:        "base URL without a scheme",
			flagName:    "base-url",
			flagValue:   "api.example.com",
			expectedErr: config.ErrInvalidBaseURL,
		},
		{
			name:        "unknown dialing area",
			flagName:    "area",
			flagValue:   "99",
			expectedErr: config.ErrUnknownSMSArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, testBaseConfigContent)
			testCmd := newFlagTestCommand()

			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			err := bindFlagsToConfig(testCmd.Flags(), cfg)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestBindFlagsToConfig_UnchangedFlags tests that unchanged flags don't override config values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfig_UnchangedFlags(t *testing.T) {
	cfg := loadTestConfig(t, testBaseConfigContent)
	testCmd := newFlagTestCommand()

	require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "86", cfg.DefaultSMSArea)
	assert.False(t, cfg.UseStaticKey)
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of an empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		BaseURL:   "https://api.example.com",
		AuthToken: "test_token",
		LogLevel:  "info",
	}

	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with an empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)

	// Validation fills the derived defaults.
	assert.Equal(t, "86", cfg.DefaultSMSArea)
	assert.Equal(t, config.DefaultResendCooldown, cfg.ResendCooldown)
}
