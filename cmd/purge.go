package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ambient-labs/vibectl/internal/controlplane"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all sandboxes",
	Long: `purge force-deletes every sandbox visible to the control plane,
regardless of repository or state. Deletion failures are reported and
skipped; the remaining sandboxes are still deleted.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := controlplane.NewGHClient(cfg.GHBin)
	sandboxes, err := client.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(sandboxes) == 0 {
		logSuccess("No sandboxes found to delete")
		return nil
	}

	logInfo("🗑 Deleting %d sandbox(es)...", len(sandboxes))

	deleted := 0
	for i, sb := range sandboxes {
		logInfo("🗑 Deleting sandbox %d/%d: %s...", i+1, len(sandboxes), sb.Name)
		if err := client.Delete(cmd.Context(), sb.Name); err != nil {
			logWarning("Failed to delete %s: %v", sb.Name, err)
			continue
		}
		deleted++
	}

	logSuccess("Deleted %d sandbox(es)", deleted)
	return nil
}
