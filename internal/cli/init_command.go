package cli

import (
	"fmt"
	"os"

	"linksecret/internal/config"

	"github.com/spf13/cobra"
)

func NewInitCommand(globalOptions *GlobalOptions) *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Writes the resolved configuration (built-in defaults plus any environment
overrides) to the configuration path so it can be adjusted by hand.
An existing file is never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, globalOptions)
		},
	}

	return initCmd
}

func runInit(cmd *cobra.Command, globalOptions *GlobalOptions) error {
	path := globalOptions.CfgFilePath

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("could not check configuration file: %w", err)
	}

	if err := config.SaveConfig(path, globalOptions.Conf); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	globalOptions.Logger.Debugf("Wrote starter configuration to %s", path)

	fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", path)

	return nil
}
