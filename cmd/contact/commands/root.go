package commands

import (
	"github.com/spf13/cobra"
)

// verbose enables debug logging to stderr.
var verbose bool

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "contact",
	Short: "Portfolio contact form client",
	Long: `contact drives the portfolio contact form from the terminal.

It validates the four form fields, posts them to the contact endpoint and
reports the result notification the same way the site does.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log controller activity to stderr")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
