// Command passport-cli is the trading platform's sign-in companion.
// It initializes and executes the root command defined in the cmd package.
package main

import "github.com/tradexhq/passport-cli/cmd"

func main() {
	cmd.Execute()
}
