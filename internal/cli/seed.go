package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/seed"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML fixture into the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			fx, err := seed.LoadFile(file)
			if err != nil {
				return err
			}
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

			gdb := store.DB()
			industryRepo := repos.NewIndustryRepo(gdb, log)
			materialRepo := repos.NewMaterialRepo(gdb, log)
			seeder := seed.NewSeeder(gdb, log, seed.Services{
				Industry:         services.NewIndustryService(log, industryRepo),
				Material:         services.NewMaterialService(log, materialRepo),
				ReuseOpportunity: services.NewReuseOpportunityService(log, repos.NewReuseOpportunityRepo(gdb, log)),
				Transaction:      services.NewTransactionService(log, repos.NewTransactionRepo(gdb, log)),
				Circulation:      services.NewCirculationService(log, repos.NewCirculationMetricRepo(gdb, log)),
			}, industryRepo, materialRepo)

			res, err := seeder.Apply(dbctx.New(cmd.Context()), fx)
			if err != nil {
				return err
			}
			cmd.Printf("seeded %d industries, %d materials, %d opportunities, %d transactions, %d circulation metrics\n",
				res.Industries, res.Materials, res.Opportunities, res.Transactions, res.CirculationMetrics)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture file (YAML)")
	return cmd
}
