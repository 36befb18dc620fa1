package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type Repos struct {
	Industry          repos.IndustryRepo
	Material          repos.MaterialRepo
	ReuseOpportunity  repos.ReuseOpportunityRepo
	Transaction       repos.TransactionRepo
	CirculationMetric repos.CirculationMetricRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Industry:          repos.NewIndustryRepo(db, log),
		Material:          repos.NewMaterialRepo(db, log),
		ReuseOpportunity:  repos.NewReuseOpportunityRepo(db, log),
		Transaction:       repos.NewTransactionRepo(db, log),
		CirculationMetric: repos.NewCirculationMetricRepo(db, log),
	}
}
