package app

import (
	"github.com/yungbote/symbiosis-backend/internal/config"
	httpserver "github.com/yungbote/symbiosis-backend/internal/http"
	httpH "github.com/yungbote/symbiosis-backend/internal/http/handlers"
	"github.com/yungbote/symbiosis-backend/internal/observability"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type Handlers struct {
	Health      *httpH.HealthHandler
	Industry    *httpH.IndustryHandler
	Material    *httpH.MaterialHandler
	Opportunity *httpH.OpportunityHandler
	Transaction *httpH.TransactionHandler
	Analytics   *httpH.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:      httpH.NewHealthHandler(log, s.Health),
		Industry:    httpH.NewIndustryHandler(log, s.Industry),
		Material:    httpH.NewMaterialHandler(log, s.Material),
		Opportunity: httpH.NewOpportunityHandler(log, s.ReuseOpportunity),
		Transaction: httpH.NewTransactionHandler(log, s.Transaction),
		Analytics:   httpH.NewAnalyticsHandler(log, s.Analytics, s.Circulation),
	}
}

func wireRouterConfig(cfg config.Config, log *logger.Logger, metrics *observability.Metrics, h Handlers) httpserver.RouterConfig {
	return httpserver.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		MetricsPath:     cfg.Metrics.Path,
		TracingEnabled:  cfg.Tracing.Enabled,
		ServiceName:     cfg.Tracing.ServiceName,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
		MaxRequestBytes: cfg.HTTP.MaxRequestBytes,

		HealthHandler:      h.Health,
		IndustryHandler:    h.Industry,
		MaterialHandler:    h.Material,
		OpportunityHandler: h.Opportunity,
		TransactionHandler: h.Transaction,
		AnalyticsHandler:   h.Analytics,
	}
}
