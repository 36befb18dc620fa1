package registry

import (
	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type TransactionRepo interface {
	Create(dbc dbctx.Context, rows []*types.Transaction) ([]*types.Transaction, error)

	// List joins material and both industries, newest transaction_date first.
	List(dbc dbctx.Context, status string) ([]*types.TransactionListing, error)
	// Count counts every transaction when status is empty.
	Count(dbc dbctx.Context, status string) (int64, error)
}

type transactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTransactionRepo(db *gorm.DB, baseLog *logger.Logger) TransactionRepo {
	return &transactionRepo{db: db, log: baseLog.With("repo", "TransactionRepo")}
}

func (r *transactionRepo) Create(dbc dbctx.Context, rows []*types.Transaction) ([]*types.Transaction, error) {
	if len(rows) == 0 {
		return []*types.Transaction{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}

func (r *transactionRepo) List(dbc dbctx.Context, status string) ([]*types.TransactionListing, error) {
	out := make([]*types.TransactionListing, 0)
	q := dbc.DB(r.db).
		Table("transactions AS t").
		Select(`t.*,
			m.name AS material_name,
			si.name AS source_industry_name,
			ti.name AS target_industry_name`).
		Joins("JOIN materials AS m ON m.id = t.material_id").
		Joins("JOIN industries AS si ON si.id = t.source_industry_id").
		Joins("JOIN industries AS ti ON ti.id = t.target_industry_id")
	if status != "" {
		q = q.Where("t.status = ?", status)
	}
	if err := q.Order("t.transaction_date DESC").Order("t.id DESC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *transactionRepo) Count(dbc dbctx.Context, status string) (int64, error) {
	var n int64
	q := dbc.DB(r.db).Model(&types.Transaction{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
