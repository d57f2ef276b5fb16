package cli

import (
	"fmt"
	"os"

	"linksecret/internal/audit"
	"linksecret/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version info
var Version = "0.2.1"

type GlobalOptions struct {
	CfgFilePath  string
	LogLevel     string
	AuditEnabled bool

	Logger  *logrus.Logger
	Conf    *config.Config
	Auditor audit.AuditLogger
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}

	rootCMD := &cobra.Command{
		Use:     "linksecret",
		Short:   "Generate and persist the wallet link secret",
		Long:    "Generates a 32 byte link secret from a cryptographically secure source and writes its hex encoding to a file for other processes to pick up.",
		Version: Version,
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd, globalOptions)
		},
		// Running without a subcommand performs the default generate
		// against the configured location.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, globalOptions, &GenerateOptions{})
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewGenerateCommand(globalOptions))
	rootCMD.AddCommand(NewInspectCommand(globalOptions))
	rootCMD.AddCommand(NewInitCommand(globalOptions))

	return rootCMD
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
