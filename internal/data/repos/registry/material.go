package registry

import (
	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type MaterialRepo interface {
	Create(dbc dbctx.Context, rows []*types.Material) ([]*types.Material, error)

	// List joins the owning industry. An empty status returns every row;
	// any other value is a plain equality filter.
	List(dbc dbctx.Context, status string) ([]*types.MaterialListing, error)
	GetByIndustryIDs(dbc dbctx.Context, industryIDs []int64) ([]*types.Material, error)

	Count(dbc dbctx.Context) (int64, error)
	SumQuantity(dbc dbctx.Context) (float64, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return &materialRepo{db: db, log: baseLog.With("repo", "MaterialRepo")}
}

func (r *materialRepo) Create(dbc dbctx.Context, rows []*types.Material) ([]*types.Material, error) {
	if len(rows) == 0 {
		return []*types.Material{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}

func (r *materialRepo) List(dbc dbctx.Context, status string) ([]*types.MaterialListing, error) {
	out := make([]*types.MaterialListing, 0)
	q := dbc.DB(r.db).
		Table("materials AS m").
		Select("m.*, i.name AS industry_name, i.sector AS sector").
		Joins("JOIN industries AS i ON i.id = m.industry_id")
	if status != "" {
		q = q.Where("m.availability_status = ?", status)
	}
	if err := q.Order("m.created_at DESC").Order("m.id DESC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *materialRepo) GetByIndustryIDs(dbc dbctx.Context, industryIDs []int64) ([]*types.Material, error) {
	out := make([]*types.Material, 0)
	if len(industryIDs) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("industry_id IN ?", industryIDs).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *materialRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&types.Material{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *materialRepo) SumQuantity(dbc dbctx.Context) (float64, error) {
	var total float64
	if err := dbc.DB(r.db).
		Model(&types.Material{}).
		Select("COALESCE(SUM(quantity), 0.0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
