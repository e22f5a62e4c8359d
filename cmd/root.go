package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ambient-labs/vibectl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	plain      bool
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "vibectl [repo] [branch] [machine] [prompt]",
	Short: "Ephemeral sandbox sessions for the Claude Code assistant",
	Long: `vibectl creates a fresh GitHub codespace, installs the Claude Code
assistant into it, starts a session, and deletes the codespace when the
session ends.

With no prompt the session is interactive; with a prompt the assistant
runs it one-shot and exits. The API key is read from ANTHROPIC_API_KEY
in the environment or a local .env file.`,
	Args: cobra.MaximumNArgs(4),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE:         runOrchestrate,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable the live status display")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the .env file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
