package services

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
)

func TestRequireFraction(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 1} {
		require.NoError(t, requireFraction("feasibility_index", ok))
	}
	for _, bad := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		requireAPIError(t, requireFraction("feasibility_index", bad), http.StatusBadRequest, apierr.CodeValidation)
	}
}

func TestRequireFinite(t *testing.T) {
	require.NoError(t, requireFinite(num("quantity", 0), num("cost_savings", -MaxMagnitude), num("x", MaxMagnitude)))

	err := requireFinite(num("quantity", 1), num("cost_savings", math.NaN()))
	requireAPIError(t, err, http.StatusBadRequest, apierr.CodeValidation)
	require.Contains(t, err.Error(), "cost_savings")

	requireAPIError(t, requireFinite(num("quantity", math.Inf(-1))), http.StatusBadRequest, apierr.CodeValidation)
	requireAPIError(t, requireFinite(num("quantity", 1e308)), http.StatusBadRequest, apierr.CodeValidation)
}

func TestNonFiniteAmountsNeverReachStorage(t *testing.T) {
	f := newFixture(t)
	dbc := dbctx.New(context.Background())

	steel, err := f.industries.Create(dbc, &types.Industry{Name: "Acme Steel", Sector: "Steel"})
	require.NoError(t, err)
	slag, err := f.materials.Create(dbc, &types.Material{IndustryID: steel.ID, Name: "Slag", Quantity: 1})
	require.NoError(t, err)

	inf, nan := math.Inf(1), math.NaN()
	calls := map[string]func() error{
		"industry annual_output": func() error {
			_, err := f.industries.Create(dbc, &types.Industry{Name: "Inf Works", Sector: "X", AnnualOutput: inf})
			return err
		},
		"material quantity inf": func() error {
			_, err := f.materials.Create(dbc, &types.Material{IndustryID: steel.ID, Name: "Dust", Quantity: inf})
			return err
		},
		"material quantity overflow": func() error {
			_, err := f.materials.Create(dbc, &types.Material{IndustryID: steel.ID, Name: "Dust", Quantity: 1e308})
			return err
		},
		"opportunity feasibility nan": func() error {
			_, err := f.opportunities.Create(dbc, &types.ReuseOpportunity{SourceMaterialID: slag.ID, TargetIndustryID: steel.ID, FeasibilityIndex: nan})
			return err
		},
		"opportunity reliability inf": func() error {
			_, err := f.opportunities.Create(dbc, &types.ReuseOpportunity{SourceMaterialID: slag.ID, TargetIndustryID: steel.ID, ReliabilityRating: inf})
			return err
		},
		"transaction quantity nan": func() error {
			_, err := f.transactions.Create(dbc, &types.Transaction{SourceIndustryID: steel.ID, TargetIndustryID: steel.ID, MaterialID: slag.ID, QuantityTransferred: nan})
			return err
		},
		"circulation rate nan": func() error {
			_, err := f.circulation.Record(dbc, &types.CirculationMetric{IndustryID: steel.ID, ReabsorptionRate: nan})
			return err
		},
		"circulation days inf": func() error {
			_, err := f.circulation.Record(dbc, &types.CirculationMetric{IndustryID: steel.ID, DaysToReabsorption: inf})
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			requireAPIError(t, call(), http.StatusBadRequest, apierr.CodeValidation)
		})
	}

	stats, err := f.analytics.Dashboard(dbc)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.TotalIndustries)
	require.EqualValues(t, 1, stats.AvailableMaterials)
	require.EqualValues(t, 0, stats.TotalTransactions)
	require.InDelta(t, 1, stats.TotalMaterialQuantity, 1e-9)
}
