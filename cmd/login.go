package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tradexhq/passport-cli/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var (
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to the platform",
		Long: `Sign in to the platform with one of the supported flows.

Use 'login account' for username and password, 'login mobile' or
'login email' for verification-code sign-in, and 'login browser' as a
fallback when code delivery is unavailable.`,
	}

	loginAccountCmd = &cobra.Command{
		Use:   "account",
		Short: "Sign in with a username and password",
		Long: `Sign in with a username and password.

The password is encrypted with the platform's public key before it is
sent. Missing values are prompted for interactively.`,
		Run: func(cmd *cobra.Command, _ []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			app.ExecuteAccountLogin(cmd.Context(), appConfig, username, password)
		},
	}

	loginMobileCmd = &cobra.Command{
		Use:   "mobile",
		Short: "Sign in with a phone number and a verification code",
		Long: `Sign in with a phone number and an SMS verification code.

With no --code flag, a code is requested for the number and read from
the terminal. Unregistered numbers are pointed at 'register' instead.`,
		Run: func(cmd *cobra.Command, _ []string) {
			phone, _ := cmd.Flags().GetString("phone")
			code, _ := cmd.Flags().GetString("code")
			transactionPassword, _ := cmd.Flags().GetString("transaction-password")

			app.ExecuteMobileLogin(cmd.Context(), appConfig, phone, code, transactionPassword)
		},
	}

	loginEmailCmd = &cobra.Command{
		Use:   "email",
		Short: "Sign in with an email address and a verification code",
		Long: `Sign in with an email address and a verification code.

With no --code flag, a code is requested for the address and read from
the terminal.`,
		Run: func(cmd *cobra.Command, _ []string) {
			email, _ := cmd.Flags().GetString("email")
			code, _ := cmd.Flags().GetString("code")

			app.ExecuteEmailLogin(cmd.Context(), appConfig, email, code)
		},
	}

	loginBrowserCmd = &cobra.Command{
		Use:   "browser",
		Short: "Sign in through the web login in a visible browser",
		Long: `Opens the platform's web login page in a visible browser.

Complete the sign-in as usual; the session token is lifted from the
auth cookie automatically and saved to the configuration file. Use this
flow when SMS or email code delivery is unavailable.`,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteBrowserLogin(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	loginAccountCmd.Flags().StringP("username", "u", "", "account name.")
	loginAccountCmd.Flags().StringP("password", "p", "", "account password (prompted when omitted).")

	loginMobileCmd.Flags().String("phone", "", "phone number.")
	loginMobileCmd.Flags().String("code", "", "verification code (requested when omitted).")
	loginMobileCmd.Flags().String("transaction-password", "", "transaction password (optional on this path).")

	loginEmailCmd.Flags().String("email", "", "email address.")
	loginEmailCmd.Flags().String("code", "", "verification code (requested when omitted).")

	loginCmd.AddCommand(loginAccountCmd, loginMobileCmd, loginEmailCmd, loginBrowserCmd)
	rootCmd.AddCommand(loginCmd)
}
