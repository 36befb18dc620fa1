package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	"github.com/yungbote/symbiosis-backend/internal/data/repos/testutil"
)

type fixture struct {
	db            *gorm.DB
	industries    IndustryService
	materials     MaterialService
	opportunities ReuseOpportunityService
	transactions  TransactionService
	circulation   CirculationService
	analytics     AnalyticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)

	industryRepo := repos.NewIndustryRepo(gdb, log)
	materialRepo := repos.NewMaterialRepo(gdb, log)
	opportunityRepo := repos.NewReuseOpportunityRepo(gdb, log)
	transactionRepo := repos.NewTransactionRepo(gdb, log)
	metricRepo := repos.NewCirculationMetricRepo(gdb, log)

	return &fixture{
		db:            gdb,
		industries:    NewIndustryService(log, industryRepo),
		materials:     NewMaterialService(log, materialRepo),
		opportunities: NewReuseOpportunityService(log, opportunityRepo),
		transactions:  NewTransactionService(log, transactionRepo),
		circulation:   NewCirculationService(log, metricRepo),
		analytics:     NewAnalyticsService(log, industryRepo, materialRepo, opportunityRepo, transactionRepo),
	}
}
