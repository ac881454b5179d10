package cli

import (
	"fmt"
	"os"

	"github.com/extreg-labs/extreg/internal/branding"
	"github.com/extreg-labs/extreg/internal/config"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage run settings",
	Long:  `Read and write settings stored at ~/` + branding.HomeDir() + `/config.yaml (or the file named by --config).`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadForWrite(); err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configPath); err != nil {
			return err
		}
		s, err := config.Current()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// loadForWrite loads the config, creating an explicitly named file first
// so that set can start a new one.
func loadForWrite() error {
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			if err := os.WriteFile(configPath, nil, 0644); err != nil {
				return fmt.Errorf("creating config file %s: %w", configPath, err)
			}
		}
	}
	return config.Load(configPath)
}
