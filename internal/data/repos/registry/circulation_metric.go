package registry

import (
	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type CirculationMetricRepo interface {
	Create(dbc dbctx.Context, rows []*types.CirculationMetric) ([]*types.CirculationMetric, error)
	// List joins the industry name, newest measurement first. Truncation
	// for display is left to the client.
	List(dbc dbctx.Context) ([]*types.CirculationListing, error)
}

type circulationMetricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCirculationMetricRepo(db *gorm.DB, baseLog *logger.Logger) CirculationMetricRepo {
	return &circulationMetricRepo{db: db, log: baseLog.With("repo", "CirculationMetricRepo")}
}

func (r *circulationMetricRepo) Create(dbc dbctx.Context, rows []*types.CirculationMetric) ([]*types.CirculationMetric, error) {
	if len(rows) == 0 {
		return []*types.CirculationMetric{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}

func (r *circulationMetricRepo) List(dbc dbctx.Context) ([]*types.CirculationListing, error) {
	out := make([]*types.CirculationListing, 0)
	if err := dbc.DB(r.db).
		Table("circulation_metrics AS c").
		Select("c.*, i.name AS industry_name").
		Joins("JOIN industries AS i ON i.id = c.industry_id").
		Order("c.measured_at DESC").
		Order("c.id DESC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
