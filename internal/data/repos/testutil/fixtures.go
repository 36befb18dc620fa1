package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/symbiosis-backend/internal/domain"
)

func SeedIndustry(tb testing.TB, ctx context.Context, tx *gorm.DB, name, sector string) *types.Industry {
	tb.Helper()
	ind := &types.Industry{
		Name:   name,
		Sector: sector,
	}
	if err := tx.WithContext(ctx).Create(ind).Error; err != nil {
		tb.Fatalf("seed industry: %v", err)
	}
	return ind
}

func SeedMaterial(tb testing.TB, ctx context.Context, tx *gorm.DB, industryID int64, name string, quantity float64, status string) *types.Material {
	tb.Helper()
	if status == "" {
		status = types.MaterialAvailable
	}
	m := &types.Material{
		IndustryID:         industryID,
		Name:               name,
		MaterialType:       "byproduct",
		Quantity:           quantity,
		Unit:               "t",
		AvailabilityStatus: status,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed material: %v", err)
	}
	return m
}

func SeedOpportunity(tb testing.TB, ctx context.Context, tx *gorm.DB, materialID, targetIndustryID int64, feasibility float64) *types.ReuseOpportunity {
	tb.Helper()
	o := &types.ReuseOpportunity{
		SourceMaterialID: materialID,
		TargetIndustryID: targetIndustryID,
		FeasibilityIndex: feasibility,
		Status:           types.OpportunityDiscovered,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed reuse opportunity: %v", err)
	}
	return o
}

func SeedTransaction(tb testing.TB, ctx context.Context, tx *gorm.DB, sourceID, targetID, materialID int64, status string, at time.Time) *types.Transaction {
	tb.Helper()
	if status == "" {
		status = types.TransactionPending
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	row := &types.Transaction{
		SourceIndustryID:    sourceID,
		TargetIndustryID:    targetID,
		MaterialID:          materialID,
		QuantityTransferred: 1,
		Unit:                "t",
		TransactionDate:     at,
		Status:              status,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed transaction: %v", err)
	}
	return row
}

func SeedCirculationMetric(tb testing.TB, ctx context.Context, tx *gorm.DB, industryID int64, materialName string, rate float64, at time.Time) *types.CirculationMetric {
	tb.Helper()
	if at.IsZero() {
		at = time.Now().UTC()
	}
	row := &types.CirculationMetric{
		IndustryID:         industryID,
		MaterialName:       materialName,
		DaysToReabsorption: 14,
		CirculationCycles:  3,
		ReabsorptionRate:   rate,
		MeasuredAt:         at,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed circulation metric: %v", err)
	}
	return row
}
