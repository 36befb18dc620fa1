package symbiosis

// DashboardStats is recomputed from storage on every request.
//
// CompletedTransactions counts only status = completed; TotalTransactions
// counts every row regardless of status.
type DashboardStats struct {
	TotalIndustries       int64   `json:"total_industries"`
	AvailableMaterials    int64   `json:"available_materials"`
	CompletedTransactions int64   `json:"completed_transactions"`
	TotalTransactions     int64   `json:"total_transactions"`
	TotalMaterialQuantity float64 `json:"total_material_quantity"`
	AvgFeasibility        float64 `json:"avg_feasibility"`
	ActiveConnections     int64   `json:"active_connections"`
}

type NetworkNode struct {
	ID     int64  `gorm:"column:id" json:"id"`
	Name   string `gorm:"column:name" json:"name"`
	Sector string `gorm:"column:sector" json:"sector"`
}

// NetworkEdge is one reuse opportunity. Source is the industry owning the
// opportunity's material, resolved by join at read time.
type NetworkEdge struct {
	OpportunityID int64   `gorm:"column:opportunity_id" json:"opportunity_id"`
	Source        int64   `gorm:"column:source" json:"source"`
	Target        int64   `gorm:"column:target" json:"target"`
	Strength      float64 `gorm:"column:strength" json:"strength"`
}

type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}
