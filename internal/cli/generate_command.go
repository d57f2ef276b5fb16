package cli

import (
	"fmt"

	"linksecret/internal/secret"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GenerateOptions struct {
	Dir  string
	File string
}

func NewGenerateCommand(globalOptions *GlobalOptions) *cobra.Command {
	generateOptions := &GenerateOptions{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh link secret and write it to disk",
		Long: `Generates 32 bytes from a cryptographically secure source, encodes them as
64 lowercase hex characters and writes them to the configured file,
replacing any previous secret. The target directory must already exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, globalOptions, generateOptions)
		},
	}

	generateOptions.registerFlags(generateCmd.Flags())

	return generateCmd
}

func (options *GenerateOptions) registerFlags(fs *pflag.FlagSet) {
	// flags for the generate command only
	fs.StringVar(&options.Dir, "dir", "", "Directory the secret file is written to. (Env: LINKSECRET_SECRET_DIR)")
	fs.StringVar(&options.File, "file", "", "Name of the secret file. (Env: LINKSECRET_SECRET_FILE)")
}

func runGenerate(cmd *cobra.Command, globalOptions *GlobalOptions, generateOptions *GenerateOptions) error {
	conf := globalOptions.Conf

	dir := conf.Secret.Directory
	if generateOptions.Dir != "" {
		dir = generateOptions.Dir
	}
	fileName := conf.Secret.FileName
	if generateOptions.File != "" {
		fileName = generateOptions.File
	}

	globalOptions.Logger.Debugf("Writing a new link secret to directory %s as %s", dir, fileName)

	path, err := secret.WriteNew(dir, fileName)
	if err != nil {
		return fmt.Errorf("failed to write link secret: %w", err)
	}

	globalOptions.Auditor.Log(cmd.Context(), "secret.generate", "cli", path, map[string]interface{}{
		"bytes": secret.Size,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Saved LinkSecretFile to %s\n", path)

	return nil
}
