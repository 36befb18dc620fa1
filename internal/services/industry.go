package services

import (
	"fmt"
	"strings"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type IndustryService interface {
	Create(dbc dbctx.Context, in *types.Industry) (*types.Industry, error)
	List(dbc dbctx.Context) ([]*types.Industry, error)
	// Delete removes the industry and, through the schema cascade, every
	// material, opportunity, transaction and metric that depends on it.
	Delete(dbc dbctx.Context, id int64) error
}

type industryService struct {
	log          *logger.Logger
	industryRepo repos.IndustryRepo
}

func NewIndustryService(log *logger.Logger, industryRepo repos.IndustryRepo) IndustryService {
	return &industryService{
		log:          log.With("service", "IndustryService"),
		industryRepo: industryRepo,
	}
}

func (s *industryService) Create(dbc dbctx.Context, in *types.Industry) (*types.Industry, error) {
	if in == nil {
		return nil, apierr.Validation("industry is required")
	}
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	sector, err := requireText("sector", in.Sector)
	if err != nil {
		return nil, err
	}
	if err := requireFinite(num("annual_output", in.AnnualOutput)); err != nil {
		return nil, err
	}
	row := &types.Industry{
		Name:         name,
		Sector:       sector,
		Location:     strings.TrimSpace(in.Location),
		Description:  strings.TrimSpace(in.Description),
		AnnualOutput: in.AnnualOutput,
	}
	created, err := s.industryRepo.Create(dbc, []*types.Industry{row})
	if err != nil {
		s.log.Warn("Create industry failed", "name", name, "error", err)
		return nil, storageError("industry", err)
	}
	s.log.Debug("Industry created", "industry_id", created[0].ID)
	return created[0], nil
}

func (s *industryService) List(dbc dbctx.Context) ([]*types.Industry, error) {
	rows, err := s.industryRepo.List(dbc)
	if err != nil {
		return nil, apierr.Internal("failed to list industries", err)
	}
	return rows, nil
}

func (s *industryService) Delete(dbc dbctx.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	deleted, err := s.industryRepo.DeleteByID(dbc, id)
	if err != nil {
		s.log.Warn("Delete industry failed", "industry_id", id, "error", err)
		return apierr.Internal("failed to delete industry", err)
	}
	if !deleted {
		return apierr.NotFound(fmt.Sprintf("industry %d not found", id))
	}
	s.log.Info("Industry deleted", "industry_id", id)
	return nil
}
