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

type TransactionService interface {
	Create(dbc dbctx.Context, in *types.Transaction) (*types.Transaction, error)
	List(dbc dbctx.Context, status string) ([]*types.TransactionListing, error)
}

type transactionService struct {
	log             *logger.Logger
	transactionRepo repos.TransactionRepo
	now             func() time.Time
}

func NewTransactionService(log *logger.Logger, transactionRepo repos.TransactionRepo) TransactionService {
	return &transactionService{
		log:             log.With("service", "TransactionService"),
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *transactionService) Create(dbc dbctx.Context, in *types.Transaction) (*types.Transaction, error) {
	if in == nil {
		return nil, apierr.Validation("transaction is required")
	}
	if err := requireID("source_industry_id", in.SourceIndustryID); err != nil {
		return nil, err
	}
	if err := requireID("target_industry_id", in.TargetIndustryID); err != nil {
		return nil, err
	}
	if err := requireID("material_id", in.MaterialID); err != nil {
		return nil, err
	}
	if err := requireFinite(
		num("quantity_transferred", in.QuantityTransferred),
		num("cost_savings", in.CostSavings),
		num("environmental_benefit", in.EnvironmentalBenefit),
	); err != nil {
		return nil, err
	}
	status, err := enumOrDefault("status", in.Status, types.TransactionPending, types.TransactionStatuses)
	if err != nil {
		return nil, err
	}

	row := *in
	row.ID = 0
	row.Status = status
	row.Unit = strings.TrimSpace(row.Unit)
	if row.TransactionDate.IsZero() {
		row.TransactionDate = s.now()
	} else {
		row.TransactionDate = row.TransactionDate.UTC()
	}

	created, err := s.transactionRepo.Create(dbc, []*types.Transaction{&row})
	if err != nil {
		s.log.Warn("Create transaction failed", "material_id", in.MaterialID, "error", err)
		return nil, storageError("transaction", err)
	}
	return created[0], nil
}

func (s *transactionService) List(dbc dbctx.Context, status string) ([]*types.TransactionListing, error) {
	rows, err := s.transactionRepo.List(dbc, strings.TrimSpace(status))
	if err != nil {
		return nil, apierr.Internal("failed to list transactions", err)
	}
	return rows, nil
}
