package registry

import (
	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type IndustryRepo interface {
	Create(dbc dbctx.Context, rows []*types.Industry) ([]*types.Industry, error)

	List(dbc dbctx.Context) ([]*types.Industry, error)
	GetByNames(dbc dbctx.Context, names []string) ([]*types.Industry, error)
	ListNodes(dbc dbctx.Context) ([]types.NetworkNode, error)
	Count(dbc dbctx.Context) (int64, error)

	// DeleteByID reports whether a row was removed. Dependents go with it
	// through ON DELETE CASCADE.
	DeleteByID(dbc dbctx.Context, id int64) (bool, error)
}

type industryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIndustryRepo(db *gorm.DB, baseLog *logger.Logger) IndustryRepo {
	return &industryRepo{db: db, log: baseLog.With("repo", "IndustryRepo")}
}

func (r *industryRepo) Create(dbc dbctx.Context, rows []*types.Industry) ([]*types.Industry, error) {
	if len(rows) == 0 {
		return []*types.Industry{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}

func (r *industryRepo) List(dbc dbctx.Context) ([]*types.Industry, error) {
	out := make([]*types.Industry, 0)
	if err := dbc.DB(r.db).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *industryRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.Industry, error) {
	out := make([]*types.Industry, 0)
	if len(names) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("name IN ?", names).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *industryRepo) ListNodes(dbc dbctx.Context) ([]types.NetworkNode, error) {
	out := make([]types.NetworkNode, 0)
	if err := dbc.DB(r.db).
		Model(&types.Industry{}).
		Select("id, name, sector").
		Order("id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *industryRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&types.Industry{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *industryRepo) DeleteByID(dbc dbctx.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Industry{})
	if res.Error != nil {
		return false, db.Classify(res.Error)
	}
	if res.RowsAffected > 0 {
		r.log.Info("industry deleted", "industry_id", id)
	}
	return res.RowsAffected > 0, nil
}
