package services

import (
	"context"
	"errors"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

var errNonFiniteAggregate = errors.New("aggregate is not a finite number")

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

type AnalyticsService interface {
	// Dashboard recomputes every summary figure from storage. Either all of
	// them succeed or the call fails.
	Dashboard(dbc dbctx.Context) (*types.DashboardStats, error)
	Network(dbc dbctx.Context) (*types.NetworkGraph, error)
}

type analyticsService struct {
	log             *logger.Logger
	industryRepo    repos.IndustryRepo
	materialRepo    repos.MaterialRepo
	opportunityRepo repos.ReuseOpportunityRepo
	transactionRepo repos.TransactionRepo
}

func NewAnalyticsService(
	log *logger.Logger,
	industryRepo repos.IndustryRepo,
	materialRepo repos.MaterialRepo,
	opportunityRepo repos.ReuseOpportunityRepo,
	transactionRepo repos.TransactionRepo,
) AnalyticsService {
	return &analyticsService{
		log:             log.With("service", "AnalyticsService"),
		industryRepo:    industryRepo,
		materialRepo:    materialRepo,
		opportunityRepo: opportunityRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *analyticsService) Dashboard(dbc dbctx.Context) (*types.DashboardStats, error) {
	start := time.Now()
	g, gctx := errgroup.WithContext(dbc.Ctx)
	if dbc.Tx != nil {
		// a single transaction cannot serve concurrent statements
		g.SetLimit(1)
	}
	inner := dbctx.Context{Ctx: gctx, Tx: dbc.Tx}

	var out types.DashboardStats
	g.Go(func() (err error) {
		out.TotalIndustries, err = s.industryRepo.Count(inner)
		return err
	})
	g.Go(func() (err error) {
		out.AvailableMaterials, err = s.materialRepo.Count(inner)
		return err
	})
	g.Go(func() (err error) {
		out.CompletedTransactions, err = s.transactionRepo.Count(inner, types.TransactionCompleted)
		return err
	})
	g.Go(func() (err error) {
		out.TotalTransactions, err = s.transactionRepo.Count(inner, "")
		return err
	})
	g.Go(func() (err error) {
		out.TotalMaterialQuantity, err = s.materialRepo.SumQuantity(inner)
		return err
	})
	g.Go(func() (err error) {
		out.AvgFeasibility, err = s.opportunityRepo.AvgFeasibility(inner)
		return err
	})
	g.Go(func() (err error) {
		out.ActiveConnections, err = s.opportunityRepo.CountFeasibleAbove(inner, types.ActiveConnectionThreshold)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("Dashboard aggregation failed", "error", err)
		return nil, apierr.Internal("failed to compute dashboard stats", err)
	}
	if !finite(out.TotalMaterialQuantity) || !finite(out.AvgFeasibility) {
		s.log.Error("Dashboard aggregate out of range",
			"total_material_quantity", out.TotalMaterialQuantity,
			"avg_feasibility", out.AvgFeasibility,
		)
		return nil, apierr.Internal("failed to compute dashboard stats", errNonFiniteAggregate)
	}
	s.log.Debug("Dashboard computed", "duration_ms", time.Since(start).Milliseconds())
	return &out, nil
}

func (s *analyticsService) Network(dbc dbctx.Context) (*types.NetworkGraph, error) {
	nodes, err := s.industryRepo.ListNodes(dbc)
	if err != nil {
		return nil, apierr.Internal("failed to load network nodes", err)
	}
	edges, err := s.opportunityRepo.ListEdges(dbc)
	if err != nil {
		return nil, apierr.Internal("failed to load network edges", err)
	}
	return &types.NetworkGraph{Nodes: nodes, Edges: edges}, nil
}

const (
	HealthOK        = "healthy"
	HealthUnhealthy = "unhealthy"
)

type HealthReport struct {
	Status          string    `json:"status"`
	Database        string    `json:"database"`
	IndustriesCount int64     `json:"industriesCount"`
	Timestamp       time.Time `json:"timestamp"`
	Error           string    `json:"error,omitempty"`
}

func (r HealthReport) Healthy() bool { return r.Status == HealthOK }

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService interface {
	Check(ctx context.Context) HealthReport
}

type healthService struct {
	log          *logger.Logger
	pinger       Pinger
	industryRepo repos.IndustryRepo
}

func NewHealthService(log *logger.Logger, pinger Pinger, industryRepo repos.IndustryRepo) HealthService {
	return &healthService{
		log:          log.With("service", "HealthService"),
		pinger:       pinger,
		industryRepo: industryRepo,
	}
}

func (s *healthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{Status: HealthOK, Database: "connected", Timestamp: time.Now().UTC()}
	fail := func(err error) HealthReport {
		s.log.Warn("Health check failed", "error", err)
		report.Status = HealthUnhealthy
		report.Database = "disconnected"
		report.Error = err.Error()
		return report
	}
	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			return fail(err)
		}
	}
	n, err := s.industryRepo.Count(dbctx.New(ctx))
	if err != nil {
		return fail(err)
	}
	report.IndustriesCount = n
	return report
}
