package cli

import (
	"log/slog"

	"github.com/extreg-labs/extreg/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configPath string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes one extension's entry into a host application's ` + branding.RegistryFile() + `.
With no arguments it applies the policy from the config file (replace by default).

All inputs come from ~/` + branding.HomeDir() + `/config.yaml or ` + branding.EnvPrefix() + `_* variables:

  registry   path to ` + branding.RegistryFile() + ` (required)
  id         extension id, publisher.name
  version    semantic version
  manifest   extension directory or package.json to read id/version from
  root       extensions directory (default: the registry's directory)
  timestamp  install time in epoch ms (default: now)
  pinned     pin the extension against auto-update (default: true)
  source     install source tag (default: manual)
  policy     insert or replace (default: replace)
  metadata   minimal or full location form (default: per policy)
  indent     indent string for the rewritten file (default: compact)`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(cmd.ErrOrStderr()))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegistration(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+branding.HomeDir()+"/config.yaml)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
