// Package cli provides the Cobra command tree for the formkit CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crishoj/formkit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "formkit",
	Short: "FormKit command-line utilities",
	Long: `The FormKit CLI works with the shared form input library:
export input definitions into your project for customization, list the
available inputs, and browse their documentation.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("formkit %s\n", version.GetVersion()))
}
