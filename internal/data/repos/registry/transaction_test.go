package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/symbiosis-backend/internal/data/db"
	"github.com/yungbote/symbiosis-backend/internal/data/repos/testutil"
	types "github.com/yungbote/symbiosis-backend/internal/domain"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
)

func TestTransactionRepoListAndCount(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewTransactionRepo(gdb, testutil.Logger(t))

	steel := testutil.SeedIndustry(t, ctx, gdb, "Acme Steel", "Steel")
	cement := testutil.SeedIndustry(t, ctx, gdb, "Portland Cement", "Cement")
	slag := testutil.SeedMaterial(t, ctx, gdb, steel.ID, "Slag", 50, "")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := testutil.SeedTransaction(t, ctx, gdb, steel.ID, cement.ID, slag.ID, types.TransactionCompleted, base)
	newest := testutil.SeedTransaction(t, ctx, gdb, steel.ID, cement.ID, slag.ID, types.TransactionPending, base.Add(48*time.Hour))
	middle := testutil.SeedTransaction(t, ctx, gdb, cement.ID, steel.ID, slag.ID, types.TransactionCompleted, base.Add(24*time.Hour))

	rows, err := repo.List(dbc, "")
	if err != nil || len(rows) != 3 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	gotIDs := []int64{rows[0].ID, rows[1].ID, rows[2].ID}
	wantIDs := []int64{newest.ID, middle.ID, oldest.ID}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("List: expected transaction_date DESC order %v, got %v", wantIDs, gotIDs)
		}
	}
	if rows[1].MaterialName != "Slag" || rows[1].SourceIndustryName != "Portland Cement" || rows[1].TargetIndustryName != "Acme Steel" {
		t.Fatalf("List: joins not resolved: %+v", rows[1])
	}
	if !rows[2].TransactionDate.Equal(base) {
		t.Fatalf("List: transaction_date = %v, want %v", rows[2].TransactionDate, base)
	}

	completed, err := repo.List(dbc, types.TransactionCompleted)
	if err != nil || len(completed) != 2 {
		t.Fatalf("List(completed): err=%v len=%d", err, len(completed))
	}
	if n, err := repo.Count(dbc, types.TransactionCompleted); err != nil || n != 2 {
		t.Fatalf("Count(completed): err=%v n=%d", err, n)
	}
	if n, err := repo.Count(dbc, ""); err != nil || n != 3 {
		t.Fatalf("Count(all): err=%v n=%d", err, n)
	}
}

func TestTransactionRepoRejectsUnknownMaterial(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewTransactionRepo(gdb, testutil.Logger(t))

	steel := testutil.SeedIndustry(t, ctx, gdb, "Acme Steel", "Steel")
	cement := testutil.SeedIndustry(t, ctx, gdb, "Portland Cement", "Cement")

	_, err := repo.Create(dbc, []*types.Transaction{{
		SourceIndustryID: steel.ID,
		TargetIndustryID: cement.ID,
		MaterialID:       777,
		TransactionDate:  time.Now().UTC(),
		Status:           types.TransactionPending,
	}})
	if !errors.Is(err, db.ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got %v", err)
	}
}
