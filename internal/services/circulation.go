package services

import (
	"strings"
	"time"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

// CirculationService has no HTTP create route; Record is used by the seeder.
type CirculationService interface {
	Record(dbc dbctx.Context, in *types.CirculationMetric) (*types.CirculationMetric, error)
	List(dbc dbctx.Context) ([]*types.CirculationListing, error)
}

type circulationService struct {
	log        *logger.Logger
	metricRepo repos.CirculationMetricRepo
}

func NewCirculationService(log *logger.Logger, metricRepo repos.CirculationMetricRepo) CirculationService {
	return &circulationService{
		log:        log.With("service", "CirculationService"),
		metricRepo: metricRepo,
	}
}

func (s *circulationService) Record(dbc dbctx.Context, in *types.CirculationMetric) (*types.CirculationMetric, error) {
	if in == nil {
		return nil, apierr.Validation("circulation metric is required")
	}
	if err := requireID("industry_id", in.IndustryID); err != nil {
		return nil, err
	}
	if err := requireFraction("reabsorption_rate", in.ReabsorptionRate); err != nil {
		return nil, err
	}
	if err := requireFinite(num("days_to_reabsorption", in.DaysToReabsorption)); err != nil {
		return nil, err
	}
	row := *in
	row.ID = 0
	row.MaterialName = strings.TrimSpace(row.MaterialName)
	if row.MeasuredAt.IsZero() {
		row.MeasuredAt = time.Now().UTC()
	}
	created, err := s.metricRepo.Create(dbc, []*types.CirculationMetric{&row})
	if err != nil {
		return nil, storageError("circulation metric", err)
	}
	return created[0], nil
}

func (s *circulationService) List(dbc dbctx.Context) ([]*types.CirculationListing, error) {
	rows, err := s.metricRepo.List(dbc)
	if err != nil {
		return nil, apierr.Internal("failed to list circulation metrics", err)
	}
	return rows, nil
}
