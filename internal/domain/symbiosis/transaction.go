package symbiosis

import "time"

const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

var TransactionStatuses = []string{TransactionPending, TransactionCompleted, TransactionFailed}

// Transaction records a transfer of a material between two industries.
type Transaction struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SourceIndustryID     int64     `gorm:"column:source_industry_id;not null;index" json:"source_industry_id"`
	TargetIndustryID     int64     `gorm:"column:target_industry_id;not null;index" json:"target_industry_id"`
	MaterialID           int64     `gorm:"column:material_id;not null;index" json:"material_id"`
	QuantityTransferred  float64   `gorm:"column:quantity_transferred" json:"quantity_transferred"`
	Unit                 string    `gorm:"column:unit" json:"unit"`
	TransactionDate      time.Time `gorm:"column:transaction_date;not null" json:"transaction_date"`
	Status               string    `gorm:"column:status;not null" json:"status"`
	CostSavings          float64   `gorm:"column:cost_savings" json:"cost_savings"`
	EnvironmentalBenefit float64   `gorm:"column:environmental_benefit" json:"environmental_benefit"`
}

func (Transaction) TableName() string { return "transactions" }

type TransactionListing struct {
	Transaction
	MaterialName       string `gorm:"column:material_name" json:"material_name"`
	SourceIndustryName string `gorm:"column:source_industry_name" json:"source_industry_name"`
	TargetIndustryName string `gorm:"column:target_industry_name" json:"target_industry_name"`
}
