package cli

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
)

func newSchemaCommand(opts *rootOptions) *cobra.Command {
	schema := &cobra.Command{
		Use:   "schema",
		Short: "Manage the registry schema",
	}
	schema.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create any missing tables and indexes, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			store, err := db.New(cfg.Database, log)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.InitializeSchema(cmd.Context()); err != nil {
				return err
			}
			cmd.Printf("schema initialized (%s)\n", store.Driver())
			return nil
		},
	})
	return schema
}
