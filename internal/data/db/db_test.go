package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/symbiosis-backend/internal/config"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

func openTestService(t *testing.T) *Service {
	t.Helper()
	cfg := config.Defaults().Database
	cfg.Path = filepath.Join(t.TempDir(), "registry.db")
	svc, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	dsn := SQLiteDSN("/tmp/registry.db", 5*time.Second)
	require.Equal(t, "file:/tmp/registry.db?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL", dsn)
}

func TestNewVerifiesForeignKeys(t *testing.T) {
	svc := openTestService(t)

	var enabled int
	require.NoError(t, svc.DB().Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	require.Equal(t, 1, enabled)
	require.Equal(t, config.DriverSQLite, svc.Driver())
	require.NoError(t, svc.Ping(context.Background()))
}

func TestInitializeSchemaIsIdempotent(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.InitializeSchema(ctx))
	require.NoError(t, svc.InitializeSchema(ctx))

	for _, table := range Tables {
		var n int
		err := svc.DB().Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n).Error
		require.NoError(t, err)
		require.Equal(t, 1, n, "table %s", table)
	}
	var idx int
	require.NoError(t, svc.DB().Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_materials_industry_id'").Scan(&idx).Error)
	require.Equal(t, 1, idx)
}

func TestInitializeSchemaUnknownDriver(t *testing.T) {
	svc := openTestService(t)
	require.Error(t, InitializeSchema(context.Background(), svc.DB(), "mysql"))
}

func TestConstraintsAreEnforced(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.InitializeSchema(ctx))
	gdb := svc.DB()

	require.NoError(t, gdb.Exec("INSERT INTO industries (name, sector) VALUES ('Acme Steel', 'Steel')").Error)

	err := Classify(gdb.Exec("INSERT INTO industries (name, sector) VALUES ('Acme Steel', 'Other')").Error)
	require.ErrorIs(t, err, ErrDuplicate)

	err = Classify(gdb.Exec("INSERT INTO materials (industry_id, name) VALUES (999, 'Slag')").Error)
	require.ErrorIs(t, err, ErrMissingReference)

	err = Classify(gdb.Exec("INSERT INTO materials (industry_id, name, availability_status) VALUES (1, 'Slag', 'lost')").Error)
	require.ErrorIs(t, err, ErrCheckViolation)

	var orphans int
	require.NoError(t, gdb.Raw("SELECT COUNT(*) FROM materials").Scan(&orphans).Error)
	require.Zero(t, orphans)
}

func TestCascadeDeletesDependents(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.InitializeSchema(ctx))
	gdb := svc.DB()

	stmts := []string{
		"INSERT INTO industries (id, name, sector) VALUES (1, 'Acme Steel', 'Steel')",
		"INSERT INTO industries (id, name, sector) VALUES (2, 'Portland Cement', 'Cement')",
		"INSERT INTO materials (id, industry_id, name, quantity) VALUES (10, 1, 'Slag', 50)",
		"INSERT INTO materials (id, industry_id, name, quantity) VALUES (20, 2, 'Kiln dust', 5)",
		"INSERT INTO reuse_opportunities (source_material_id, target_industry_id, feasibility_index) VALUES (10, 2, 0.8)",
		"INSERT INTO reuse_opportunities (source_material_id, target_industry_id, feasibility_index) VALUES (20, 1, 0.3)",
		"INSERT INTO transactions (source_industry_id, target_industry_id, material_id) VALUES (1, 2, 10)",
		"INSERT INTO transactions (source_industry_id, target_industry_id, material_id) VALUES (2, 2, 20)",
		"INSERT INTO circulation_metrics (industry_id, material_name) VALUES (1, 'Slag')",
		"INSERT INTO circulation_metrics (industry_id, material_name) VALUES (2, 'Kiln dust')",
	}
	for _, s := range stmts {
		require.NoError(t, gdb.Exec(s).Error, s)
	}

	require.NoError(t, gdb.Exec("DELETE FROM industries WHERE id = 1").Error)

	counts := map[string]int{
		"materials":           1,
		"reuse_opportunities": 0,
		"transactions":        1,
		"circulation_metrics": 1,
	}
	for table, want := range counts {
		var got int
		require.NoError(t, gdb.Raw("SELECT COUNT(*) FROM "+table).Scan(&got).Error)
		require.Equal(t, want, got, table)
	}
}
