package symbiosis

import "time"

const (
	MaterialAvailable = "available"
	MaterialInUse     = "in_use"
	MaterialArchived  = "archived"
)

// MaterialStatuses lists every accepted availability_status.
var MaterialStatuses = []string{MaterialAvailable, MaterialInUse, MaterialArchived}

type Material struct {
	ID                     int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IndustryID             int64     `gorm:"column:industry_id;not null;index" json:"industry_id"`
	Name                   string    `gorm:"column:name;not null" json:"name"`
	MaterialType           string    `gorm:"column:material_type" json:"material_type"`
	Quantity               float64   `gorm:"column:quantity" json:"quantity"`
	Unit                   string    `gorm:"column:unit" json:"unit"`
	ChemicalComposition    string    `gorm:"column:chemical_composition" json:"chemical_composition"`
	MechanicalTolerance    string    `gorm:"column:mechanical_tolerance" json:"mechanical_tolerance"`
	ThermodynamicStability string    `gorm:"column:thermodynamic_stability" json:"thermodynamic_stability"`
	RegulatoryStatus       string    `gorm:"column:regulatory_status" json:"regulatory_status"`
	AvailabilityStatus     string    `gorm:"column:availability_status;not null" json:"availability_status"`
	Description            string    `gorm:"column:description" json:"description"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Material) TableName() string { return "materials" }

// MaterialListing is a Material joined with its owning industry.
type MaterialListing struct {
	Material
	IndustryName string `gorm:"column:industry_name" json:"industry_name"`
	Sector       string `gorm:"column:sector" json:"sector"`
}
