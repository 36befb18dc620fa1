package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yungbote/symbiosis-backend/internal/config"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/platform/shutdown"
)

var version = "dev"

type rootOptions struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCommand builds the symbiosis command tree. Running it without a
// subcommand serves the API.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	root := &cobra.Command{
		Use:           "symbiosis",
		Short:         "Industrial symbiosis registry API",
		Long:          `Registry of industries, their byproduct materials, reuse opportunities and transactions, served as a JSON API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: $SYMBIOSIS_CONFIG or ./symbiosis.yaml)")
	root.PersistentFlags().String("db-path", "", "sqlite database file")
	root.PersistentFlags().String("db-driver", "", "database driver (sqlite or postgres)")
	root.PersistentFlags().String("db-dsn", "", "postgres connection string")
	root.PersistentFlags().Int("port", 0, "HTTP port (overrides PORT and config)")
	_ = opts.v.BindPFlag("http.port", root.PersistentFlags().Lookup("port"))
	_ = opts.v.BindPFlag("database.path", root.PersistentFlags().Lookup("db-path"))
	_ = opts.v.BindPFlag("database.driver", root.PersistentFlags().Lookup("db-driver"))
	_ = opts.v.BindPFlag("database.dsn", root.PersistentFlags().Lookup("db-dsn"))

	serve := newServeCommand(opts)
	root.RunE = serve.RunE

	root.AddCommand(serve, newSchemaCommand(opts), newSeedCommand(opts))
	return root
}

// load resolves configuration and a logger for one command invocation.
func (o *rootOptions) load() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg, log, nil
}

// Execute runs the root command until it returns or SIGINT/SIGTERM arrives.
func Execute() int {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
