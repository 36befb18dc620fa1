package registry

import (
	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type ReuseOpportunityRepo interface {
	Create(dbc dbctx.Context, rows []*types.ReuseOpportunity) ([]*types.ReuseOpportunity, error)

	// ListRanked returns opportunities best-first by feasibility_index.
	ListRanked(dbc dbctx.Context) ([]*types.OpportunityListing, error)
	// ListEdges derives one network edge per opportunity; the source
	// industry comes from the material's owner, never from a stored column.
	ListEdges(dbc dbctx.Context) ([]types.NetworkEdge, error)

	Count(dbc dbctx.Context) (int64, error)
	AvgFeasibility(dbc dbctx.Context) (float64, error)
	CountFeasibleAbove(dbc dbctx.Context, threshold float64) (int64, error)
}

type reuseOpportunityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReuseOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) ReuseOpportunityRepo {
	return &reuseOpportunityRepo{db: db, log: baseLog.With("repo", "ReuseOpportunityRepo")}
}

func (r *reuseOpportunityRepo) Create(dbc dbctx.Context, rows []*types.ReuseOpportunity) ([]*types.ReuseOpportunity, error) {
	if len(rows) == 0 {
		return []*types.ReuseOpportunity{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}

func (r *reuseOpportunityRepo) ListRanked(dbc dbctx.Context) ([]*types.OpportunityListing, error) {
	out := make([]*types.OpportunityListing, 0)
	if err := dbc.DB(r.db).
		Table("reuse_opportunities AS ro").
		Select(`ro.*,
			m.name AS material_name,
			m.material_type AS material_type,
			si.id AS source_industry_id,
			si.name AS source_industry,
			si.sector AS source_sector,
			ti.name AS target_industry_name,
			ti.sector AS target_sector`).
		Joins("JOIN materials AS m ON m.id = ro.source_material_id").
		Joins("JOIN industries AS si ON si.id = m.industry_id").
		Joins("JOIN industries AS ti ON ti.id = ro.target_industry_id").
		Order("ro.feasibility_index DESC").
		Order("ro.id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reuseOpportunityRepo) ListEdges(dbc dbctx.Context) ([]types.NetworkEdge, error) {
	out := make([]types.NetworkEdge, 0)
	if err := dbc.DB(r.db).
		Table("reuse_opportunities AS ro").
		Select(`ro.id AS opportunity_id,
			m.industry_id AS source,
			ro.target_industry_id AS target,
			ro.feasibility_index AS strength`).
		Joins("JOIN materials AS m ON m.id = ro.source_material_id").
		Order("ro.id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reuseOpportunityRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&types.ReuseOpportunity{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// AvgFeasibility is 0 when there are no opportunities.
func (r *reuseOpportunityRepo) AvgFeasibility(dbc dbctx.Context) (float64, error) {
	var avg float64
	if err := dbc.DB(r.db).
		Model(&types.ReuseOpportunity{}).
		Select("COALESCE(AVG(feasibility_index), 0.0)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *reuseOpportunityRepo) CountFeasibleAbove(dbc dbctx.Context, threshold float64) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).
		Model(&types.ReuseOpportunity{}).
		Where("feasibility_index > ?", threshold).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
