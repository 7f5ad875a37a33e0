package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/tradexhq/passport-cli/internal/constants"
	"github.com/tradexhq/passport-cli/internal/logger"
	"github.com/tradexhq/passport-cli/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the base URL of the member API.
	BaseURL string `mapstructure:"base_url"`
	// SocketURL is the websocket endpoint for realtime notices.
	// Empty means realtime notifications are disabled.
	SocketURL string `mapstructure:"socket_url"`
	// AuthToken is the session token of the signed-in member.
	// Empty until a login succeeds; persisted back after sign-in.
	AuthToken string `mapstructure:"auth_token"`
	// DefaultSMSArea is the dialing area code used when none is given on the command line.
	DefaultSMSArea string `mapstructure:"default_sms_area"`
	// InviterPhone is the referrer phone number attached to registrations, if any.
	InviterPhone string `mapstructure:"inviter_phone"`
	// ExclusiveDomain is the white-label domain attached to registrations, if any.
	ExclusiveDomain string `mapstructure:"exclusive_domain"`
	// ResendCooldown is how long code resending stays disabled after a send (e.g., "60s").
	ResendCooldown string `mapstructure:"resend_cooldown"`
	// RequestTimeout is the timeout for API requests (e.g., "60s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// ValidateDestinations enables local format checks on phone numbers and
	// email addresses before a verification code is requested.
	ValidateDestinations bool `mapstructure:"validate_destinations"`
	// UseStaticKey makes credential encryption use the baked-in public key
	// instead of fetching one from the server.
	UseStaticKey bool `mapstructure:"use_static_key"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedResendCooldown is the parsed resend cooldown duration.
	ParsedResendCooldown time.Duration
	// ParsedRequestTimeout is the parsed request timeout duration.
	ParsedRequestTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultBaseURL is the base URL of the production member API.
	DefaultBaseURL = "https://api.tradex.pro"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".passport-cli.yaml"

	// DefaultResendCooldown is the resend cooldown used when the config omits one.
	DefaultResendCooldown = "60s"

	// DefaultRequestTimeout is the request timeout used when the config omits one.
	DefaultRequestTimeout = "60s"

	// DefaultMaxLogLength is the default maximum length (in bytes) of logged request dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptyBaseURL indicates that the API base URL is missing.
	ErrEmptyBaseURL = errors.New("base_url cannot be empty")
	// ErrInvalidBaseURL indicates that the API base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrInvalidSocketURL indicates that the websocket URL is not an absolute ws(s) URL.
	ErrInvalidSocketURL = errors.New("socket_url must be an absolute ws(s) URL")
	// ErrUnknownSMSArea indicates that the default SMS area has no known phone format.
	ErrUnknownSMSArea = errors.New("unknown default_sms_area")
	// ErrInvalidInviterPhone indicates that the inviter phone does not match the default area format.
	ErrInvalidInviterPhone = errors.New("invalid inviter_phone")
	// ErrInvalidResendCooldown indicates that the resend cooldown duration is invalid.
	ErrInvalidResendCooldown = errors.New("resend_cooldown must be positive")
	// ErrInvalidRequestTimeout indicates that the request timeout duration is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || !baseURL.IsAbs() || (baseURL.Scheme != "http" && baseURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.SocketURL = strings.TrimSpace(cfg.SocketURL)
	if cfg.SocketURL != "" {
		socketURL, parseErr := url.Parse(cfg.SocketURL)
		if parseErr != nil || !socketURL.IsAbs() || (socketURL.Scheme != "ws" && socketURL.Scheme != "wss") {
			return fmt.Errorf("%w: '%s'", ErrInvalidSocketURL, cfg.SocketURL)
		}
	}

	if cfg.DefaultSMSArea == "" {
		cfg.DefaultSMSArea = utils.AreaChina
	}

	if cfg.DefaultSMSArea != utils.AreaChina && cfg.DefaultSMSArea != utils.AreaBrazil {
		return fmt.Errorf("%w: '%s'", ErrUnknownSMSArea, cfg.DefaultSMSArea)
	}

	// The inviter phone is optional, but must fit the default area format when set.
	cfg.InviterPhone = strings.TrimSpace(cfg.InviterPhone)
	if cfg.InviterPhone != "" && !utils.IsValidPhone(cfg.DefaultSMSArea, cfg.InviterPhone) {
		return fmt.Errorf("%w: '%s' does not match area %s", ErrInvalidInviterPhone, cfg.InviterPhone, cfg.DefaultSMSArea)
	}

	if cfg.ResendCooldown == "" {
		cfg.ResendCooldown = DefaultResendCooldown
	}

	cfg.ParsedResendCooldown, err = time.ParseDuration(cfg.ResendCooldown)
	if err != nil {
		return fmt.Errorf("failed to parse resend cooldown: %w", err)
	}

	if cfg.ParsedResendCooldown <= 0 {
		return ErrInvalidResendCooldown
	}

	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

// SaveConfig writes the session token back to the configuration file
// while preserving the original format and key order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.AuthToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the auth_token value in the node tree.
	updateAuthTokenInNode(&node, cfg.AuthToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, authToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("auth_token", authToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateAuthTokenInNode updates the auth_token value in the YAML node tree.
func updateAuthTokenInNode(node *yaml.Node, authToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "auth_token" {
			// Update the value while preserving style.
			valueNode.Value = authToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
