package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes. Alert is data, not a failure: a run that produced a report
// exits 0 regardless of the alert value.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "revmon",
	Short: "Review snapshot change detection and alerting",
	Long: "Revmon compares a baseline snapshot of classified app reviews against a fresh one,\n" +
		"aggregates negative sentiment by (source, app version, category), applies threshold\n" +
		"rules, and writes a deterministic delta report plus updated/alert signals.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print revmon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "revmon version %s\n", version)
	},
}
