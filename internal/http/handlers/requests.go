package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	types "github.com/yungbote/symbiosis-backend/internal/domain"
)

// flexInt accepts 7, 7.0, "7" or "" (zero). Fractions are truncated; values
// outside int64 and non-finite values are rejected.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s, err := unquoteNumber(b)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = flexInt(n)
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || n >= math.MaxInt64 || n < math.MinInt64 {
		return fmt.Errorf("expected an integer, got %s", string(b))
	}
	*f = flexInt(int64(n))
	return nil
}

// flexFloat accepts JSON numbers or numeric strings. NaN and infinities are
// rejected even when spelled out as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s, err := unquoteNumber(b)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("expected a finite number, got %s", string(b))
	}
	*f = flexFloat(n)
	return nil
}

// flexTime accepts RFC 3339 timestamps or plain dates.
type flexTime struct{ time.Time }

func (f *flexTime) UnmarshalJSON(b []byte) error {
	s, err := unquoteNumber(b)
	if err != nil {
		return err
	}
	if s == "" {
		f.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("expected an RFC 3339 timestamp or date, got %s", string(b))
}

func unquoteNumber(b []byte) (string, error) {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return "", nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(u), nil
	}
	return s, nil
}

type createIndustryRequest struct {
	Name         string    `json:"name"`
	Sector       string    `json:"sector"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	AnnualOutput flexFloat `json:"annual_output"`
}

func (r createIndustryRequest) toDomain() *types.Industry {
	return &types.Industry{
		Name:         r.Name,
		Sector:       r.Sector,
		Location:     r.Location,
		Description:  r.Description,
		AnnualOutput: float64(r.AnnualOutput),
	}
}

type createMaterialRequest struct {
	IndustryID             flexInt   `json:"industry_id"`
	Name                   string    `json:"name"`
	MaterialType           string    `json:"material_type"`
	Quantity               flexFloat `json:"quantity"`
	Unit                   string    `json:"unit"`
	ChemicalComposition    string    `json:"chemical_composition"`
	MechanicalTolerance    string    `json:"mechanical_tolerance"`
	ThermodynamicStability string    `json:"thermodynamic_stability"`
	RegulatoryStatus       string    `json:"regulatory_status"`
	AvailabilityStatus     string    `json:"availability_status"`
	Description            string    `json:"description"`
}

func (r createMaterialRequest) toDomain() *types.Material {
	return &types.Material{
		IndustryID:             int64(r.IndustryID),
		Name:                   r.Name,
		MaterialType:           r.MaterialType,
		Quantity:               float64(r.Quantity),
		Unit:                   r.Unit,
		ChemicalComposition:    r.ChemicalComposition,
		MechanicalTolerance:    r.MechanicalTolerance,
		ThermodynamicStability: r.ThermodynamicStability,
		RegulatoryStatus:       r.RegulatoryStatus,
		AvailabilityStatus:     r.AvailabilityStatus,
		Description:            r.Description,
	}
}

type createOpportunityRequest struct {
	SourceMaterialID             flexInt   `json:"source_material_id"`
	TargetIndustryID             flexInt   `json:"target_industry_id"`
	CompatibilityScore           flexFloat `json:"compatibility_score"`
	FeasibilityIndex             flexFloat `json:"feasibility_index"`
	PreprocessingRequired        string    `json:"preprocessing_required"`
	EstimatedCostSavings         flexFloat `json:"estimated_cost_savings"`
	EnvironmentalImpactReduction flexFloat `json:"environmental_impact_reduction"`
	ReliabilityRating            flexFloat `json:"reliability_rating"`
	Status                       string    `json:"status"`
	Notes                        string    `json:"notes"`
}

func (r createOpportunityRequest) toDomain() *types.ReuseOpportunity {
	return &types.ReuseOpportunity{
		SourceMaterialID:             int64(r.SourceMaterialID),
		TargetIndustryID:             int64(r.TargetIndustryID),
		CompatibilityScore:           float64(r.CompatibilityScore),
		FeasibilityIndex:             float64(r.FeasibilityIndex),
		PreprocessingRequired:        r.PreprocessingRequired,
		EstimatedCostSavings:         float64(r.EstimatedCostSavings),
		EnvironmentalImpactReduction: float64(r.EnvironmentalImpactReduction),
		ReliabilityRating:            float64(r.ReliabilityRating),
		Status:                       r.Status,
		Notes:                        r.Notes,
	}
}

type createTransactionRequest struct {
	SourceIndustryID     flexInt   `json:"source_industry_id"`
	TargetIndustryID     flexInt   `json:"target_industry_id"`
	MaterialID           flexInt   `json:"material_id"`
	QuantityTransferred  flexFloat `json:"quantity_transferred"`
	Unit                 string    `json:"unit"`
	TransactionDate      flexTime  `json:"transaction_date"`
	Status               string    `json:"status"`
	CostSavings          flexFloat `json:"cost_savings"`
	EnvironmentalBenefit flexFloat `json:"environmental_benefit"`
}

func (r createTransactionRequest) toDomain() *types.Transaction {
	return &types.Transaction{
		SourceIndustryID:     int64(r.SourceIndustryID),
		TargetIndustryID:     int64(r.TargetIndustryID),
		MaterialID:           int64(r.MaterialID),
		QuantityTransferred:  float64(r.QuantityTransferred),
		Unit:                 r.Unit,
		TransactionDate:      r.TransactionDate.Time,
		Status:               r.Status,
		CostSavings:          float64(r.CostSavings),
		EnvironmentalBenefit: float64(r.EnvironmentalBenefit),
	}
}
