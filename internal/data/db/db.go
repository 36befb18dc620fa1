package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/symbiosis-backend/internal/config"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

// ErrForeignKeysDisabled means the SQLite handle would silently skip
// cascades and reference checks.
var ErrForeignKeysDisabled = errors.New("sqlite foreign key enforcement is not active")

// Service owns the single shared, pooled storage handle.
type Service struct {
	db     *gorm.DB
	log    *logger.Logger
	driver string
}

func New(cfg config.DatabaseConfig, baseLog *logger.Logger) (*Service, error) {
	serviceLog := baseLog.With("service", "DatabaseService")

	gormLog := gormLogger.New(
		baseLog.StdLog(),
		gormLogger.Config{
			SlowThreshold:             cfg.SlowQueryThreshold,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	gormCfg := &gorm.Config{
		Logger:  gormLog,
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var (
		dialector gorm.Dialector
		target    string
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.Path, cfg.BusyTimeout))
		target = cfg.Path
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
		target = cfg.DSN
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	serviceLog.Info("Opening database...", "driver", cfg.Driver, "target_dsn", target)
	gdb, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	s := &Service{db: gdb, log: serviceLog, driver: cfg.Driver}
	if cfg.Driver == config.DriverSQLite {
		if err := s.verifyForeignKeys(context.Background()); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return s, nil
}

// SQLiteDSN builds a mattn/go-sqlite3 URI that turns on foreign key
// enforcement for every connection the pool opens.
func SQLiteDSN(path string, busyTimeout time.Duration) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_journal_mode", "WAL")
	if busyTimeout > 0 {
		q.Set("_busy_timeout", fmt.Sprint(busyTimeout.Milliseconds()))
	}
	return "file:" + path + "?" + q.Encode()
}

func (s *Service) verifyForeignKeys(ctx context.Context) error {
	var enabled int
	if err := s.db.WithContext(ctx).Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		return fmt.Errorf("read foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		return ErrForeignKeysDisabled
	}
	s.log.Debug("sqlite foreign key enforcement active")
	return nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Driver() string { return s.driver }

// InitializeSchema creates any missing tables and indexes.
func (s *Service) InitializeSchema(ctx context.Context) error {
	s.log.Info("Initializing schema...", "driver", s.driver)
	if err := InitializeSchema(ctx, s.db, s.driver); err != nil {
		s.log.Error("Schema initialization failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
