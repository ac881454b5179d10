package cli

import (
	"github.com/extreg-labs/extreg/internal/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"replace"},
	Short:   "Replace the extension's entry with fresh metadata",
	Long: `Removes any entry for the configured extension and appends a new one with
the full location form. With a fixed timestamp, running it again produces the
same file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := registry.Replace
		return runRegistration(cmd, &p)
	},
}
