package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/symbiosis-backend/internal/data/repos"
	"github.com/yungbote/symbiosis-backend/internal/data/repos/testutil"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
)

func TestDashboardSingleIndustry(t *testing.T) {
	f := newFixture(t)
	dbc := dbctx.New(context.Background())

	ind, err := f.industries.Create(dbc, &types.Industry{Name: "Acme Steel", Sector: "Steel"})
	require.NoError(t, err)
	_, err = f.materials.Create(dbc, &types.Material{IndustryID: ind.ID, Name: "Slag", Quantity: 50})
	require.NoError(t, err)

	got, err := f.analytics.Dashboard(dbc)
	require.NoError(t, err)
	want := &types.DashboardStats{
		TotalIndustries:       1,
		AvailableMaterials:    1,
		TotalMaterialQuantity: 50,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dashboard mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardEmpty(t *testing.T) {
	f := newFixture(t)
	got, err := f.analytics.Dashboard(dbctx.New(context.Background()))
	require.NoError(t, err)
	require.Equal(t, types.DashboardStats{}, *got)
}

func TestDashboardCountsAndNetwork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)

	steel := testutil.SeedIndustry(t, ctx, f.db, "Acme Steel", "Steel")
	cement := testutil.SeedIndustry(t, ctx, f.db, "Portland Cement", "Cement")
	slag := testutil.SeedMaterial(t, ctx, f.db, steel.ID, "Slag", 50, "")
	dust := testutil.SeedMaterial(t, ctx, f.db, cement.ID, "Kiln dust", 20, types.MaterialArchived)
	o1 := testutil.SeedOpportunity(t, ctx, f.db, slag.ID, cement.ID, 0.8)
	o2 := testutil.SeedOpportunity(t, ctx, f.db, slag.ID, cement.ID, 0.5)
	o3 := testutil.SeedOpportunity(t, ctx, f.db, dust.ID, steel.ID, 0.2)
	testutil.SeedTransaction(t, ctx, f.db, steel.ID, cement.ID, slag.ID, types.TransactionCompleted, time.Time{})
	testutil.SeedTransaction(t, ctx, f.db, steel.ID, cement.ID, slag.ID, types.TransactionPending, time.Time{})
	testutil.SeedTransaction(t, ctx, f.db, cement.ID, steel.ID, dust.ID, types.TransactionFailed, time.Time{})

	stats, err := f.analytics.Dashboard(dbc)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalIndustries)
	require.EqualValues(t, 2, stats.AvailableMaterials, "counts every material regardless of status")
	require.EqualValues(t, 1, stats.CompletedTransactions)
	require.EqualValues(t, 3, stats.TotalTransactions)
	require.InDelta(t, 70, stats.TotalMaterialQuantity, 1e-9)
	require.InDelta(t, 0.5, stats.AvgFeasibility, 1e-9)
	require.EqualValues(t, 1, stats.ActiveConnections, "0.5 is not above the threshold")

	graph, err := f.analytics.Network(dbc)
	require.NoError(t, err)
	wantNodes := []types.NetworkNode{
		{ID: steel.ID, Name: "Acme Steel", Sector: "Steel"},
		{ID: cement.ID, Name: "Portland Cement", Sector: "Cement"},
	}
	wantEdges := []types.NetworkEdge{
		{OpportunityID: o1.ID, Source: steel.ID, Target: cement.ID, Strength: 0.8},
		{OpportunityID: o2.ID, Source: steel.ID, Target: cement.ID, Strength: 0.5},
		{OpportunityID: o3.ID, Source: cement.ID, Target: steel.ID, Strength: 0.2},
	}
	if diff := cmp.Diff(wantNodes, graph.Nodes); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantEdges, graph.Edges); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestNetworkEmptyGraphHasArrays(t *testing.T) {
	f := newFixture(t)
	graph, err := f.analytics.Network(dbctx.New(context.Background()))
	require.NoError(t, err)
	require.NotNil(t, graph.Nodes)
	require.NotNil(t, graph.Edges)
}

func TestDashboardFailsWhole(t *testing.T) {
	f := newFixture(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	stats, err := f.analytics.Dashboard(dbctx.New(context.Background()))
	require.Error(t, err)
	require.Nil(t, stats)
}

type overflowingMaterialRepo struct{ repos.MaterialRepo }

func (overflowingMaterialRepo) SumQuantity(dbctx.Context) (float64, error) { return math.Inf(1), nil }

func TestDashboardRejectsNonFiniteAggregate(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	analytics := NewAnalyticsService(log,
		repos.NewIndustryRepo(gdb, log),
		overflowingMaterialRepo{repos.NewMaterialRepo(gdb, log)},
		repos.NewReuseOpportunityRepo(gdb, log),
		repos.NewTransactionRepo(gdb, log),
	)

	stats, err := analytics.Dashboard(dbctx.New(context.Background()))
	require.Nil(t, stats)
	requireAPIError(t, err, http.StatusInternalServerError, apierr.CodeInternal)
}

type failingPinger struct{ err error }

func (p failingPinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	industryRepo := repos.NewIndustryRepo(gdb, log)
	testutil.SeedIndustry(t, context.Background(), gdb, "Acme Steel", "Steel")

	report := NewHealthService(log, nil, industryRepo).Check(context.Background())
	require.True(t, report.Healthy())
	require.Equal(t, "connected", report.Database)
	require.EqualValues(t, 1, report.IndustriesCount)
	require.False(t, report.Timestamp.IsZero())

	report = NewHealthService(log, failingPinger{err: errors.New("connection refused")}, industryRepo).Check(context.Background())
	require.False(t, report.Healthy())
	require.Equal(t, HealthUnhealthy, report.Status)
	require.Equal(t, "disconnected", report.Database)
	require.Contains(t, report.Error, "connection refused")
}
