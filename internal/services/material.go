package services

import (
	"strings"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type MaterialService interface {
	Create(dbc dbctx.Context, in *types.Material) (*types.Material, error)
	// List filters on availability_status when status is non-empty. Unknown
	// statuses simply match nothing.
	List(dbc dbctx.Context, status string) ([]*types.MaterialListing, error)
}

type materialService struct {
	log          *logger.Logger
	materialRepo repos.MaterialRepo
}

func NewMaterialService(log *logger.Logger, materialRepo repos.MaterialRepo) MaterialService {
	return &materialService{
		log:          log.With("service", "MaterialService"),
		materialRepo: materialRepo,
	}
}

func (s *materialService) Create(dbc dbctx.Context, in *types.Material) (*types.Material, error) {
	if in == nil {
		return nil, apierr.Validation("material is required")
	}
	if err := requireID("industry_id", in.IndustryID); err != nil {
		return nil, err
	}
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	if err := requireFinite(num("quantity", in.Quantity)); err != nil {
		return nil, err
	}
	status, err := enumOrDefault("availability_status", in.AvailabilityStatus, types.MaterialAvailable, types.MaterialStatuses)
	if err != nil {
		return nil, err
	}

	row := *in
	row.ID = 0
	row.Name = name
	row.AvailabilityStatus = status
	row.MaterialType = strings.TrimSpace(row.MaterialType)
	row.Unit = strings.TrimSpace(row.Unit)

	created, err := s.materialRepo.Create(dbc, []*types.Material{&row})
	if err != nil {
		s.log.Warn("Create material failed", "industry_id", in.IndustryID, "error", err)
		return nil, storageError("material", err)
	}
	return created[0], nil
}

func (s *materialService) List(dbc dbctx.Context, status string) ([]*types.MaterialListing, error) {
	rows, err := s.materialRepo.List(dbc, strings.TrimSpace(status))
	if err != nil {
		return nil, apierr.Internal("failed to list materials", err)
	}
	return rows, nil
}
