package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "gistkit",
	Short:   "A terminal client for the gists API",
	Version: version,
	Long: `Gistkit is a terminal client for GitHub gists: fetch, create, edit,
star, fork and comment on gists from the command line, with JSON/YAML
output, jsonpath extraction and schema validation for scripting.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to config file")
	RootCmd.PersistentFlags().String("token", "", "API token (overrides config and environment)")
	RootCmd.PersistentFlags().String("base-url", "", "API base URL (overrides config)")
	RootCmd.PersistentFlags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")
	RootCmd.PersistentFlags().String("extract", "", "Print only the value at this jsonpath of the result")
	RootCmd.PersistentFlags().String("schema", "", "Validate the result against a JSON Schema file")

	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(createCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(rmCmd)
	RootCmd.AddCommand(starCmd)
	RootCmd.AddCommand(unstarCmd)
	RootCmd.AddCommand(starredCmd)
	RootCmd.AddCommand(forkCmd)
	RootCmd.AddCommand(forksCmd)
	RootCmd.AddCommand(commentCmd)
	RootCmd.AddCommand(commentsCmd)
	RootCmd.AddCommand(commitsCmd)
	RootCmd.AddCommand(benchCmd)
}

// fail prints an error and exits non-zero
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
