package symbiosis

import "time"

const OpportunityDiscovered = "discovered"

// ActiveConnectionThreshold is the feasibility above which an opportunity
// counts as an active connection on the dashboard.
const ActiveConnectionThreshold = 0.5

// ReuseOpportunity proposes routing a material to a target industry.
// FeasibilityIndex is a fraction in [0,1]; percentages are derived by callers.
type ReuseOpportunity struct {
	ID                           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SourceMaterialID             int64     `gorm:"column:source_material_id;not null;index" json:"source_material_id"`
	TargetIndustryID             int64     `gorm:"column:target_industry_id;not null;index" json:"target_industry_id"`
	CompatibilityScore           float64   `gorm:"column:compatibility_score" json:"compatibility_score"`
	FeasibilityIndex             float64   `gorm:"column:feasibility_index" json:"feasibility_index"`
	PreprocessingRequired        string    `gorm:"column:preprocessing_required" json:"preprocessing_required"`
	EstimatedCostSavings         float64   `gorm:"column:estimated_cost_savings" json:"estimated_cost_savings"`
	EnvironmentalImpactReduction float64   `gorm:"column:environmental_impact_reduction" json:"environmental_impact_reduction"`
	ReliabilityRating            float64   `gorm:"column:reliability_rating" json:"reliability_rating"`
	Status                       string    `gorm:"column:status;not null" json:"status"`
	Notes                        string    `gorm:"column:notes" json:"notes"`
	CreatedAt                    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReuseOpportunity) TableName() string { return "reuse_opportunities" }

// FeasibilityPercent renders the stored fraction as a percentage.
func (o ReuseOpportunity) FeasibilityPercent() float64 {
	return o.FeasibilityIndex * 100
}

// OpportunityListing resolves the opportunity's material, the material's
// owning (source) industry and the target industry.
type OpportunityListing struct {
	ReuseOpportunity
	MaterialName       string `gorm:"column:material_name" json:"material_name"`
	MaterialType       string `gorm:"column:material_type" json:"material_type"`
	SourceIndustryID   int64  `gorm:"column:source_industry_id" json:"source_industry_id"`
	SourceIndustry     string `gorm:"column:source_industry" json:"source_industry"`
	SourceSector       string `gorm:"column:source_sector" json:"source_sector"`
	TargetIndustryName string `gorm:"column:target_industry_name" json:"target_industry_name"`
	TargetSector       string `gorm:"column:target_sector" json:"target_sector"`
}
