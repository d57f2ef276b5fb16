// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"

	"linksecret/internal/audit"
	"linksecret/internal/config"
	"linksecret/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	registerGlobalFlags(cmd.PersistentFlags(), options)
}

func registerGlobalFlags(fs *pflag.FlagSet, options *GlobalOptions) {
	fs.StringVar(&options.CfgFilePath, "config_path", "config.toml", "Path to the base configuration file. (Env: LINKSECRET_CONFIG_PATH)")
	fs.StringVar(&options.LogLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: LINKSECRET_LOG_LEVEL)")
	fs.BoolVar(&options.AuditEnabled, "audit-enabled", false, "Enable audit logging of secret operations. (Env: LINKSECRET_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command, options *GlobalOptions) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("LINKSECRET_CONFIG_PATH"); envPath != "" && options.CfgFilePath == "config.toml" {
		options.CfgFilePath = envPath
	}

	cfg, err := config.LoadConfig(options.CfgFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file is fine; env, flags and defaults cover everything.
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", options.CfgFilePath, err)
		}
	}

	// 2. Apply Overrides ('.env' file, then process env, then CLI flags)
	if err := cfg.LoadDotEnv(os.Getwd); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg.LoadEnv(os.Getenv)
	applyFlagOverrides(cfg, cmd, options)

	// 3. Defaults for anything still unset
	cfg.ApplyDefaults()

	// 4. Initialize Logging and auditing
	options.Conf = cfg
	options.Logger = logging.NewLogger(cfg.Logging.Level)
	options.Auditor = audit.NewAuditLoggerSTDOUT(options.Logger, cfg.Logging.AuditEnabled)

	return nil
}

func applyFlagOverrides(c *config.Config, cmd *cobra.Command, options *GlobalOptions) {
	if options.LogLevel != "" {
		c.Logging.Level = options.LogLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = options.AuditEnabled
	}
}
