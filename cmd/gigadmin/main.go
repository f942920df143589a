package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gigmarket/gigadmin/internal/config"
	"github.com/gigmarket/gigadmin/internal/logger"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "gigadmin",
		Short:        "Sample-data store for the marketplace admin dashboard",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a gigadmin YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newServeCmd(opts),
		newSeedCmd(opts),
		newResetCmd(opts),
		newStatusCmd(opts),
		newShowCmd(opts),
	)
	return cmd
}

// load resolves configuration and installs the logger.
func (o *rootOptions) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg = config.Load()
		err = cfg.Validate()
	}
	if err != nil {
		return nil, err
	}
	if o.debug {
		cfg.Debug = true
	}

	logger.Setup(logger.Config{Level: cfg.LogLevel, Debug: cfg.Debug})
	return cfg, nil
}
