package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/symbiosis-backend/internal/http/handlers"
	httpMW "github.com/yungbote/symbiosis-backend/internal/http/middleware"
	"github.com/yungbote/symbiosis-backend/internal/observability"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	Metrics         *observability.Metrics
	MetricsPath     string
	TracingEnabled  bool
	ServiceName     string
	AllowedOrigins  []string
	MaxRequestBytes int64

	HealthHandler      *httpH.HealthHandler
	IndustryHandler    *httpH.IndustryHandler
	MaterialHandler    *httpH.MaterialHandler
	OpportunityHandler *httpH.OpportunityHandler
	TransactionHandler *httpH.TransactionHandler
	AnalyticsHandler   *httpH.AnalyticsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))
	r.Use(httpMW.LimitRequestBody(cfg.MaxRequestBytes))

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Health
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Industries
		if cfg.IndustryHandler != nil {
			api.GET("/industries", cfg.IndustryHandler.List)
			api.POST("/industries", cfg.IndustryHandler.Create)
			api.DELETE("/industries/:id", cfg.IndustryHandler.Delete)
		}

		// Materials
		if cfg.MaterialHandler != nil {
			api.GET("/materials", cfg.MaterialHandler.List)
			api.POST("/materials", cfg.MaterialHandler.Create)
		}

		// Reuse opportunities
		if cfg.OpportunityHandler != nil {
			api.GET("/reuse-opportunities", cfg.OpportunityHandler.List)
			api.POST("/reuse-opportunities", cfg.OpportunityHandler.Create)
		}

		// Transactions
		if cfg.TransactionHandler != nil {
			api.GET("/transactions", cfg.TransactionHandler.List)
			api.POST("/transactions", cfg.TransactionHandler.Create)
		}

		// Aggregates
		if cfg.AnalyticsHandler != nil {
			api.GET("/dashboard-stats", cfg.AnalyticsHandler.DashboardStats)
			api.GET("/symbiosis/network", cfg.AnalyticsHandler.Network)
			api.GET("/analytics/circulation", cfg.AnalyticsHandler.Circulation)
		}
	}

	return r
}
