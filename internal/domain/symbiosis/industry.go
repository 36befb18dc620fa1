package symbiosis

import "time"

// Industry is an organization that produces or consumes material byproducts.
// It is the root of every cascade in the registry.
type Industry struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Sector       string    `gorm:"column:sector;not null" json:"sector"`
	Location     string    `gorm:"column:location;not null" json:"location"`
	Description  string    `gorm:"column:description;not null" json:"description"`
	AnnualOutput float64   `gorm:"column:annual_output;not null" json:"annual_output"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Industry) TableName() string { return "industries" }
