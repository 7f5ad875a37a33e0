package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "passport-cli",
		Short: "Sign in to the trading platform and manage your session token.",
		Long: `Passport CLI is the command-line companion for the trading platform's
member accounts. It supports:
- Signing in with a username and password
- Signing in with a phone number or email address and a verification code
- Browser-assisted sign-in when code delivery is unavailable
- Creating a new account over the phone or email path

A successful sign-in refreshes your local member state and stores the
session token in the configuration file for later use.`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.String(
		"base-url",
		"",
		"member API base URL (overrides the configuration file).")

	persistentFlags.String(
		"area",
		"",
		"dialing area code for SMS verification, e.g. 86 or 55.")

	persistentFlags.Bool(
		"static-key",
		false,
		"encrypt credentials with the baked-in public key instead of fetching one.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		// A missing config file is fine on first run, defaults apply and
		// a successful sign-in creates the file.
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
		}

		appConfig = &config.Config{BaseURL: config.DefaultBaseURL}
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}

	if flag := flags.Lookup("area"); flag != nil && flag.Changed {
		cfg.DefaultSMSArea, _ = flags.GetString("area")
	}

	if flag := flags.Lookup("static-key"); flag != nil && flag.Changed {
		cfg.UseStaticKey, _ = flags.GetBool("static-key")
	}

	return config.ValidateConfig(cfg)
}
