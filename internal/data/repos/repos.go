package repos

import "github.com/yungbote/symbiosis-backend/internal/data/repos/registry"

type IndustryRepo = registry.IndustryRepo
type MaterialRepo = registry.MaterialRepo
type ReuseOpportunityRepo = registry.ReuseOpportunityRepo
type TransactionRepo = registry.TransactionRepo
type CirculationMetricRepo = registry.CirculationMetricRepo

var (
	NewIndustryRepo          = registry.NewIndustryRepo
	NewMaterialRepo          = registry.NewMaterialRepo
	NewReuseOpportunityRepo  = registry.NewReuseOpportunityRepo
	NewTransactionRepo       = registry.NewTransactionRepo
	NewCirculationMetricRepo = registry.NewCirculationMetricRepo
)
