package registry

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/symbiosis-backend/internal/data/repos/testutil"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
)

func TestCirculationMetricRepo(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewCirculationMetricRepo(gdb, testutil.Logger(t))

	steel := testutil.SeedIndustry(t, ctx, gdb, "Acme Steel", "Steel")
	at := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(dbc, []*types.CirculationMetric{
		{IndustryID: steel.ID, MaterialName: "Slag", DaysToReabsorption: 21, CirculationCycles: 2, ReabsorptionRate: 0.4, MeasuredAt: at},
		{IndustryID: steel.ID, MaterialName: "Mill scale", DaysToReabsorption: 9, CirculationCycles: 5, ReabsorptionRate: 0.9, MeasuredAt: at.AddDate(0, 1, 0)},
	})
	if err != nil || len(created) != 2 {
		t.Fatalf("Create: err=%v rows=%+v", err, created)
	}

	rows, err := repo.List(dbc)
	if err != nil || len(rows) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	if rows[0].MaterialName != "Mill scale" || rows[0].IndustryName != "Acme Steel" {
		t.Fatalf("List: expected newest measurement first with industry name, got %+v", rows[0])
	}
	if rows[0].CirculationCycles != 5 || rows[0].ReabsorptionRate != 0.9 {
		t.Fatalf("List: fields not round-tripped: %+v", rows[0])
	}
}
