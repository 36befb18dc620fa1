package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/symbiosis-backend/internal/app"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Initialize the schema and serve the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := app.New(cmd.Context(), *cfg, log)
			if err != nil {
				log.Error("Startup failed", "error", err)
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := a.Close(ctx); err != nil {
					log.Warn("Shutdown incomplete", "error", err)
				}
			}()
			return a.Run(cmd.Context())
		},
	}
}
