package seed

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
	"github.com/yungbote/symbiosis-backend/internal/services"
)

type Services struct {
	Industry         services.IndustryService
	Material         services.MaterialService
	ReuseOpportunity services.ReuseOpportunityService
	Transaction      services.TransactionService
	Circulation      services.CirculationService
}

type Result struct {
	Industries         int
	Materials          int
	Opportunities      int
	Transactions       int
	CirculationMetrics int
}

// Seeder writes a fixture through the regular services so every entry is
// validated exactly like an API request.
type Seeder struct {
	db        *gorm.DB
	log       *logger.Logger
	svc       Services
	industry  repos.IndustryRepo
	materials repos.MaterialRepo
}

func NewSeeder(db *gorm.DB, log *logger.Logger, svc Services, industryRepo repos.IndustryRepo, materialRepo repos.MaterialRepo) *Seeder {
	return &Seeder{
		db:        db,
		log:       log.With("component", "Seeder"),
		svc:       svc,
		industry:  industryRepo,
		materials: materialRepo,
	}
}

// Apply inserts the fixture in one transaction: either every entry lands or
// none does. Names may refer to rows that already exist in storage.
func (s *Seeder) Apply(dbc dbctx.Context, fx *Fixture) (Result, error) {
	var res Result
	if fx == nil {
		return res, nil
	}
	err := s.db.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		inner := dbctx.Context{Ctx: dbc.Ctx, Tx: tx}
		r, err := s.apply(inner, fx)
		res = r
		return err
	})
	if err != nil {
		s.log.Warn("Seed aborted", "error", err)
		return Result{}, err
	}
	s.log.Info("Seed applied",
		"industries", res.Industries,
		"materials", res.Materials,
		"opportunities", res.Opportunities,
		"transactions", res.Transactions,
		"circulation_metrics", res.CirculationMetrics,
	)
	return res, nil
}

func (s *Seeder) apply(dbc dbctx.Context, fx *Fixture) (Result, error) {
	var res Result
	industryIDs := map[string]int64{}
	materialIDs := map[string]int64{}

	for i, in := range fx.Industries {
		created, err := s.svc.Industry.Create(dbc, &types.Industry{
			Name:         in.Name,
			Sector:       in.Sector,
			Location:     in.Location,
			Description:  in.Description,
			AnnualOutput: in.AnnualOutput,
		})
		if err != nil {
			return res, fmt.Errorf("industries[%d] %q: %w", i, in.Name, err)
		}
		industryIDs[created.Name] = created.ID
		res.Industries++

		for j, m := range in.Materials {
			mat, err := s.svc.Material.Create(dbc, &types.Material{
				IndustryID:             created.ID,
				Name:                   m.Name,
				MaterialType:           m.MaterialType,
				Quantity:               m.Quantity,
				Unit:                   m.Unit,
				ChemicalComposition:    m.ChemicalComposition,
				MechanicalTolerance:    m.MechanicalTolerance,
				ThermodynamicStability: m.ThermodynamicStability,
				RegulatoryStatus:       m.RegulatoryStatus,
				AvailabilityStatus:     m.AvailabilityStatus,
				Description:            m.Description,
			})
			if err != nil {
				return res, fmt.Errorf("industries[%d].materials[%d] %q: %w", i, j, m.Name, err)
			}
			if _, dup := materialIDs[mat.Name]; dup {
				return res, fmt.Errorf("industries[%d].materials[%d]: material name %q is not unique within the fixture", i, j, mat.Name)
			}
			materialIDs[mat.Name] = mat.ID
			res.Materials++
		}
	}

	resolve := newResolver(s, dbc, industryIDs, materialIDs)

	for i, o := range fx.Opportunities {
		materialID, err := resolve.material(o.Material)
		if err != nil {
			return res, fmt.Errorf("opportunities[%d]: %w", i, err)
		}
		targetID, err := resolve.industry(o.TargetIndustry)
		if err != nil {
			return res, fmt.Errorf("opportunities[%d]: %w", i, err)
		}
		if _, err := s.svc.ReuseOpportunity.Create(dbc, &types.ReuseOpportunity{
			SourceMaterialID:             materialID,
			TargetIndustryID:             targetID,
			CompatibilityScore:           o.CompatibilityScore,
			FeasibilityIndex:             o.FeasibilityIndex,
			PreprocessingRequired:        o.PreprocessingRequired,
			EstimatedCostSavings:         o.EstimatedCostSavings,
			EnvironmentalImpactReduction: o.EnvironmentalImpactReduction,
			ReliabilityRating:            o.ReliabilityRating,
			Status:                       o.Status,
			Notes:                        o.Notes,
		}); err != nil {
			return res, fmt.Errorf("opportunities[%d] %q -> %q: %w", i, o.Material, o.TargetIndustry, err)
		}
		res.Opportunities++
	}

	for i, t := range fx.Transactions {
		materialID, err := resolve.material(t.Material)
		if err != nil {
			return res, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		sourceID, err := resolve.industry(t.SourceIndustry)
		if err != nil {
			return res, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		targetID, err := resolve.industry(t.TargetIndustry)
		if err != nil {
			return res, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		if _, err := s.svc.Transaction.Create(dbc, &types.Transaction{
			SourceIndustryID:     sourceID,
			TargetIndustryID:     targetID,
			MaterialID:           materialID,
			QuantityTransferred:  t.QuantityTransferred,
			Unit:                 t.Unit,
			TransactionDate:      t.TransactionDate,
			Status:               t.Status,
			CostSavings:          t.CostSavings,
			EnvironmentalBenefit: t.EnvironmentalBenefit,
		}); err != nil {
			return res, fmt.Errorf("transactions[%d] %q: %w", i, t.Material, err)
		}
		res.Transactions++
	}

	for i, m := range fx.CirculationMetrics {
		industryID, err := resolve.industry(m.Industry)
		if err != nil {
			return res, fmt.Errorf("circulation_metrics[%d]: %w", i, err)
		}
		if _, err := s.svc.Circulation.Record(dbc, &types.CirculationMetric{
			IndustryID:         industryID,
			MaterialName:       m.MaterialName,
			DaysToReabsorption: m.DaysToReabsorption,
			CirculationCycles:  m.CirculationCycles,
			ReabsorptionRate:   m.ReabsorptionRate,
			MeasuredAt:         m.MeasuredAt,
		}); err != nil {
			return res, fmt.Errorf("circulation_metrics[%d] %q: %w", i, m.Industry, err)
		}
		res.CirculationMetrics++
	}
	return res, nil
}

// resolver maps fixture names to ids, falling back to rows already stored.
type resolver struct {
	s           *Seeder
	dbc         dbctx.Context
	industryIDs map[string]int64
	materialIDs map[string]int64
	loadedMats  bool
}

func newResolver(s *Seeder, dbc dbctx.Context, industryIDs, materialIDs map[string]int64) *resolver {
	return &resolver{s: s, dbc: dbc, industryIDs: industryIDs, materialIDs: materialIDs}
}

func (r *resolver) industry(name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("industry name is required")
	}
	if id, ok := r.industryIDs[name]; ok {
		return id, nil
	}
	rows, err := r.s.industry.GetByNames(r.dbc, []string{name})
	if err != nil {
		return 0, fmt.Errorf("look up industry %q: %w", name, err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("unknown industry %q", name)
	}
	r.industryIDs[name] = rows[0].ID
	return rows[0].ID, nil
}

func (r *resolver) material(name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("material name is required")
	}
	if id, ok := r.materialIDs[name]; ok {
		return id, nil
	}
	if !r.loadedMats {
		r.loadedMats = true
		if err := r.loadStoredMaterials(); err != nil {
			return 0, err
		}
		if id, ok := r.materialIDs[name]; ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown material %q", name)
}

// loadStoredMaterials indexes materials of every stored industry. The first
// stored row wins when names repeat across industries.
func (r *resolver) loadStoredMaterials() error {
	all, err := r.s.industry.List(r.dbc)
	if err != nil {
		return fmt.Errorf("list industries: %w", err)
	}
	ids := make([]int64, 0, len(all))
	for _, ind := range all {
		ids = append(ids, ind.ID)
	}
	mats, err := r.s.materials.GetByIndustryIDs(r.dbc, ids)
	if err != nil {
		return fmt.Errorf("list materials: %w", err)
	}
	for _, m := range mats {
		if _, ok := r.materialIDs[m.Name]; !ok {
			r.materialIDs[m.Name] = m.ID
		}
	}
	return nil
}
