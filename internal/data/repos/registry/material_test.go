package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	"github.com/yungbote/symbiosis-backend/internal/data/repos/testutil"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
)

func TestMaterialRepoListJoinsIndustry(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewMaterialRepo(gdb, testutil.Logger(t))

	steel := testutil.SeedIndustry(t, ctx, gdb, "Acme Steel", "Steel")
	created, err := repo.Create(dbc, []*types.Material{{
		IndustryID:          steel.ID,
		Name:                "Blast furnace slag",
		MaterialType:        "mineral",
		Quantity:            50,
		Unit:                "t",
		ChemicalComposition: "CaO 40%, SiO2 35%",
		AvailabilityStatus:  types.MaterialAvailable,
	}})
	if err != nil || len(created) != 1 || created[0].ID <= 0 {
		t.Fatalf("Create: err=%v rows=%+v", err, created)
	}
	testutil.SeedMaterial(t, ctx, gdb, steel.ID, "Mill scale", 3, types.MaterialInUse)

	rows, err := repo.List(dbc, "")
	if err != nil || len(rows) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	if rows[0].Name != "Mill scale" {
		t.Fatalf("List: expected newest first, got %q", rows[0].Name)
	}
	slag := rows[1]
	if slag.IndustryName != "Acme Steel" || slag.Sector != "Steel" {
		t.Fatalf("List: industry not joined: %+v", slag)
	}
	if slag.ChemicalComposition != "CaO 40%, SiO2 35%" || slag.Quantity != 50 || slag.CreatedAt.IsZero() {
		t.Fatalf("List: material fields not round-tripped: %+v", slag.Material)
	}

	available, err := repo.List(dbc, types.MaterialAvailable)
	if err != nil || len(available) != 1 || available[0].Name != "Blast furnace slag" {
		t.Fatalf("List(available): err=%v rows=%+v", err, available)
	}
	archived, err := repo.List(dbc, types.MaterialArchived)
	if err != nil || archived == nil || len(archived) != 0 {
		t.Fatalf("List(archived): expected empty slice, err=%v rows=%#v", err, archived)
	}
	unknown, err := repo.List(dbc, "no-such-status")
	if err != nil || len(unknown) != 0 {
		t.Fatalf("List(unknown): err=%v len=%d", err, len(unknown))
	}

	if n, err := repo.Count(dbc); err != nil || n != 2 {
		t.Fatalf("Count: err=%v n=%d", err, n)
	}
	if sum, err := repo.SumQuantity(dbc); err != nil || sum != 53 {
		t.Fatalf("SumQuantity: err=%v sum=%v", err, sum)
	}
	if byInd, err := repo.GetByIndustryIDs(dbc, []int64{steel.ID}); err != nil || len(byInd) != 2 {
		t.Fatalf("GetByIndustryIDs: err=%v len=%d", err, len(byInd))
	}
}

func TestMaterialRepoRejectsUnknownIndustry(t *testing.T) {
	gdb := testutil.DB(t)
	dbc := dbctx.New(context.Background())
	repo := NewMaterialRepo(gdb, testutil.Logger(t))

	_, err := repo.Create(dbc, []*types.Material{{
		IndustryID:         4242,
		Name:               "Orphan",
		AvailabilityStatus: types.MaterialAvailable,
	}})
	if !errors.Is(err, db.ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got %v", err)
	}
	if n, err := repo.Count(dbc); err != nil || n != 0 {
		t.Fatalf("orphan row persisted: err=%v n=%d", err, n)
	}
}

func TestMaterialRepoRejectsUnknownStatus(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewMaterialRepo(gdb, testutil.Logger(t))
	steel := testutil.SeedIndustry(t, ctx, gdb, "Acme Steel", "Steel")

	_, err := repo.Create(dbc, []*types.Material{{
		IndustryID:         steel.ID,
		Name:               "Slag",
		AvailabilityStatus: "sold",
	}})
	if !errors.Is(err, db.ErrCheckViolation) {
		t.Fatalf("expected ErrCheckViolation, got %v", err)
	}
}

func TestMaterialRepoEmptyAggregates(t *testing.T) {
	gdb := testutil.DB(t)
	dbc := dbctx.New(context.Background())
	repo := NewMaterialRepo(gdb, testutil.Logger(t))

	if sum, err := repo.SumQuantity(dbc); err != nil || sum != 0 {
		t.Fatalf("SumQuantity on empty table: err=%v sum=%v", err, sum)
	}
	if rows, err := repo.GetByIndustryIDs(dbc, nil); err != nil || len(rows) != 0 {
		t.Fatalf("GetByIndustryIDs(nil): err=%v len=%d", err, len(rows))
	}
}
