package services

import (
	"strings"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

type ReuseOpportunityService interface {
	Create(dbc dbctx.Context, in *types.ReuseOpportunity) (*types.ReuseOpportunity, error)
	ListRanked(dbc dbctx.Context) ([]*types.OpportunityListing, error)
}

type reuseOpportunityService struct {
	log             *logger.Logger
	opportunityRepo repos.ReuseOpportunityRepo
}

func NewReuseOpportunityService(log *logger.Logger, opportunityRepo repos.ReuseOpportunityRepo) ReuseOpportunityService {
	return &reuseOpportunityService{
		log:             log.With("service", "ReuseOpportunityService"),
		opportunityRepo: opportunityRepo,
	}
}

func (s *reuseOpportunityService) Create(dbc dbctx.Context, in *types.ReuseOpportunity) (*types.ReuseOpportunity, error) {
	if in == nil {
		return nil, apierr.Validation("reuse opportunity is required")
	}
	if err := requireID("source_material_id", in.SourceMaterialID); err != nil {
		return nil, err
	}
	if err := requireID("target_industry_id", in.TargetIndustryID); err != nil {
		return nil, err
	}
	if err := requireFraction("feasibility_index", in.FeasibilityIndex); err != nil {
		return nil, err
	}
	if err := requireFinite(
		num("compatibility_score", in.CompatibilityScore),
		num("estimated_cost_savings", in.EstimatedCostSavings),
		num("environmental_impact_reduction", in.EnvironmentalImpactReduction),
		num("reliability_rating", in.ReliabilityRating),
	); err != nil {
		return nil, err
	}

	row := *in
	row.ID = 0
	row.Status = strings.TrimSpace(row.Status)
	if row.Status == "" {
		row.Status = types.OpportunityDiscovered
	}

	created, err := s.opportunityRepo.Create(dbc, []*types.ReuseOpportunity{&row})
	if err != nil {
		s.log.Warn("Create reuse opportunity failed",
			"source_material_id", in.SourceMaterialID,
			"target_industry_id", in.TargetIndustryID,
			"error", err,
		)
		return nil, storageError("reuse opportunity", err)
	}
	return created[0], nil
}

func (s *reuseOpportunityService) ListRanked(dbc dbctx.Context) ([]*types.OpportunityListing, error) {
	rows, err := s.opportunityRepo.ListRanked(dbc)
	if err != nil {
		return nil, apierr.Internal("failed to list reuse opportunities", err)
	}
	return rows, nil
}
