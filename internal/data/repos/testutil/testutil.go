package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/config"
	"github.com/yungbote/symbiosis-backend/internal/data/db"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a freshly initialized registry database for one test.
//
// By default every call gets its own SQLite file under tb.TempDir(). When
// TEST_POSTGRES_DSN is set the tests run against that server instead and the
// tables are truncated first, so such runs must not use t.Parallel.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	return Service(tb).DB()
}

func Service(tb testing.TB) *db.Service {
	tb.Helper()

	cfg := config.Defaults().Database
	if dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN")); dsn != "" {
		cfg.Driver = config.DriverPostgres
		cfg.DSN = dsn
	} else {
		cfg.Path = filepath.Join(tb.TempDir(), "registry.db")
	}

	svc, err := db.New(cfg, Logger(tb))
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })

	if err := svc.InitializeSchema(context.Background()); err != nil {
		tb.Fatalf("failed to init test schema: %v", err)
	}
	if cfg.Driver == config.DriverPostgres {
		stmt := "TRUNCATE " + strings.Join(db.Tables, ", ") + " RESTART IDENTITY CASCADE"
		if err := svc.DB().Exec(stmt).Error; err != nil {
			tb.Fatalf("failed to truncate test tables: %v", err)
		}
	}
	return svc
}
