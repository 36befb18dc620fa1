package domain

import "github.com/yungbote/symbiosis-backend/internal/domain/symbiosis"

const (
	MaterialAvailable = symbiosis.MaterialAvailable
	MaterialInUse     = symbiosis.MaterialInUse
	MaterialArchived  = symbiosis.MaterialArchived

	OpportunityDiscovered     = symbiosis.OpportunityDiscovered
	ActiveConnectionThreshold = symbiosis.ActiveConnectionThreshold

	TransactionPending   = symbiosis.TransactionPending
	TransactionCompleted = symbiosis.TransactionCompleted
	TransactionFailed    = symbiosis.TransactionFailed
)

var (
	MaterialStatuses    = symbiosis.MaterialStatuses
	TransactionStatuses = symbiosis.TransactionStatuses
)

type Industry = symbiosis.Industry
type Material = symbiosis.Material
type MaterialListing = symbiosis.MaterialListing
type ReuseOpportunity = symbiosis.ReuseOpportunity
type OpportunityListing = symbiosis.OpportunityListing
type Transaction = symbiosis.Transaction
type TransactionListing = symbiosis.TransactionListing
type CirculationMetric = symbiosis.CirculationMetric
type CirculationListing = symbiosis.CirculationListing

type DashboardStats = symbiosis.DashboardStats
type NetworkNode = symbiosis.NetworkNode
type NetworkEdge = symbiosis.NetworkEdge
type NetworkGraph = symbiosis.NetworkGraph
