package cli

import (
	"github.com/extreg-labs/extreg/internal/branding"
	"github.com/extreg-labs/extreg/internal/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register the extension unless it is already registered",
	Long: `Adds an entry for the configured extension with the minimal location form.
If ` + branding.RegistryFile() + ` already has an entry for the id, nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := registry.InsertIfAbsent
		return runRegistration(cmd, &p)
	},
}
