package app

import (
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type Services struct {
	Industry         services.IndustryService
	Material         services.MaterialService
	ReuseOpportunity services.ReuseOpportunityService
	Transaction      services.TransactionService
	Circulation      services.CirculationService
	Analytics        services.AnalyticsService
	Health           services.HealthService
}

func wireServices(log *logger.Logger, pinger services.Pinger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Industry:         services.NewIndustryService(log, r.Industry),
		Material:         services.NewMaterialService(log, r.Material),
		ReuseOpportunity: services.NewReuseOpportunityService(log, r.ReuseOpportunity),
		Transaction:      services.NewTransactionService(log, r.Transaction),
		Circulation:      services.NewCirculationService(log, r.CirculationMetric),
		Analytics:        services.NewAnalyticsService(log, r.Industry, r.Material, r.ReuseOpportunity, r.Transaction),
		Health:           services.NewHealthService(log, pinger, r.Industry),
	}
}
