package symbiosis

import "time"

// CirculationMetric is a periodic measurement of how quickly a material is
// reabsorbed into use. MaterialName is free text, not a reference.
type CirculationMetric struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IndustryID         int64     `gorm:"column:industry_id;not null;index" json:"industry_id"`
	MaterialName       string    `gorm:"column:material_name" json:"material_name"`
	DaysToReabsorption float64   `gorm:"column:days_to_reabsorption" json:"days_to_reabsorption"`
	CirculationCycles  int64     `gorm:"column:circulation_cycles" json:"circulation_cycles"`
	ReabsorptionRate   float64   `gorm:"column:reabsorption_rate" json:"reabsorption_rate"`
	MeasuredAt         time.Time `gorm:"column:measured_at;not null" json:"measured_at"`
}

func (CirculationMetric) TableName() string { return "circulation_metrics" }

type CirculationListing struct {
	CirculationMetric
	IndustryName string `gorm:"column:industry_name" json:"industry_name"`
}
