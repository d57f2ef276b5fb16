package cli

import (
	"fmt"

	"linksecret/internal/secret"
	"linksecret/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type InspectOptions struct {
	Dir  string
	File string
}

func NewInspectCommand(globalOptions *GlobalOptions) *cobra.Command {
	inspectOptions := &InspectOptions{}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Validate the stored link secret and print its fingerprint",
		Long: `Reads the configured link secret file, checks that it holds exactly 64
lowercase hex characters and prints a SHA3-256 fingerprint of the
encoding. The secret itself is never printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, globalOptions, inspectOptions)
		},
	}

	inspectOptions.registerFlags(inspectCmd.Flags())

	return inspectCmd
}

func (options *InspectOptions) registerFlags(fs *pflag.FlagSet) {
	// flags for the inspect command only
	fs.StringVar(&options.Dir, "dir", "", "Directory the secret file is read from. (Env: LINKSECRET_SECRET_DIR)")
	fs.StringVar(&options.File, "file", "", "Name of the secret file. (Env: LINKSECRET_SECRET_FILE)")
}

func runInspect(cmd *cobra.Command, globalOptions *GlobalOptions, inspectOptions *InspectOptions) error {
	conf := globalOptions.Conf

	dir := conf.Secret.Directory
	if inspectOptions.Dir != "" {
		dir = inspectOptions.Dir
	}
	fileName := conf.Secret.FileName
	if inspectOptions.File != "" {
		fileName = inspectOptions.File
	}

	path := storage.SecretPath(dir, fileName)
	globalOptions.Logger.Debugf("Inspecting link secret file %s", path)

	s, err := secret.Load(path)
	if err != nil {
		return fmt.Errorf("failed to inspect link secret: %w", err)
	}

	globalOptions.Auditor.Log(cmd.Context(), "secret.inspect", "cli", path, map[string]interface{}{
		"fingerprint": s.Fingerprint(),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "LinkSecretFile: %s\n", path)
	fmt.Fprintf(out, "Fingerprint (SHA3-256): %s\n", s.Fingerprint())

	return nil
}
