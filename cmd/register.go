package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tradexhq/passport-cli/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require global definitions.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new member account",
	Long: `Create a new member account over the phone or email path.

The phone path asks for a login password and a transaction password,
both encrypted before transmission. The email path asks for a login
password only; the transaction password is set later in the member
area. Missing values are prompted for interactively.`,
	Run: func(cmd *cobra.Command, _ []string) {
		username, _ := cmd.Flags().GetString("username")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		code, _ := cmd.Flags().GetString("code")
		password, _ := cmd.Flags().GetString("password")
		transactionPassword, _ := cmd.Flags().GetString("transaction-password")
		inviter, _ := cmd.Flags().GetString("inviter")

		app.ExecuteRegister(cmd.Context(), appConfig, &app.RegisterInput{
			Username:            username,
			Phone:               phone,
			Email:               email,
			Code:                code,
			Password:            password,
			TransactionPassword: transactionPassword,
			InviterPhone:        inviter,
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	registerFlags := registerCmd.Flags()

	registerFlags.StringP("username", "u", "", "account name.")
	registerFlags.String("phone", "", "phone number (phone registration path).")
	registerFlags.String("email", "", "email address (email registration path).")
	registerFlags.String("code", "", "verification code (requested when omitted).")
	registerFlags.StringP("password", "p", "", "login password (prompted when omitted).")
	registerFlags.String("transaction-password", "", "transaction password (phone path, prompted when omitted).")
	registerFlags.String("inviter", "", "referrer phone number attached to the registration.")

	registerCmd.MarkFlagsMutuallyExclusive("phone", "email")

	rootCmd.AddCommand(registerCmd)
}
