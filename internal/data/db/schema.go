package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/symbiosis-backend/internal/config"
)

type schemaStatement struct {
	name string
	sql  string
}

var sqliteSchema = []schemaStatement{
	{"industries", `
CREATE TABLE IF NOT EXISTS industries (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL UNIQUE,
    sector        TEXT NOT NULL,
    location      TEXT NOT NULL DEFAULT '',
    description   TEXT NOT NULL DEFAULT '',
    annual_output REAL NOT NULL DEFAULT 0,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
	{"materials", `
CREATE TABLE IF NOT EXISTS materials (
    id                      INTEGER PRIMARY KEY AUTOINCREMENT,
    industry_id             INTEGER NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    name                    TEXT NOT NULL,
    material_type           TEXT NOT NULL DEFAULT '',
    quantity                REAL NOT NULL DEFAULT 0,
    unit                    TEXT NOT NULL DEFAULT '',
    chemical_composition    TEXT NOT NULL DEFAULT '',
    mechanical_tolerance    TEXT NOT NULL DEFAULT '',
    thermodynamic_stability TEXT NOT NULL DEFAULT '',
    regulatory_status       TEXT NOT NULL DEFAULT '',
    availability_status     TEXT NOT NULL DEFAULT 'available'
                            CHECK (availability_status IN ('available', 'in_use', 'archived')),
    description             TEXT NOT NULL DEFAULT '',
    created_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
	{"idx_materials_industry_id", `CREATE INDEX IF NOT EXISTS idx_materials_industry_id ON materials(industry_id)`},
	{"reuse_opportunities", `
CREATE TABLE IF NOT EXISTS reuse_opportunities (
    id                             INTEGER PRIMARY KEY AUTOINCREMENT,
    source_material_id             INTEGER NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
    target_industry_id             INTEGER NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    compatibility_score            REAL NOT NULL DEFAULT 0,
    feasibility_index              REAL NOT NULL DEFAULT 0
                                   CHECK (feasibility_index >= 0 AND feasibility_index <= 1),
    preprocessing_required         TEXT NOT NULL DEFAULT '',
    estimated_cost_savings         REAL NOT NULL DEFAULT 0,
    environmental_impact_reduction REAL NOT NULL DEFAULT 0,
    reliability_rating             REAL NOT NULL DEFAULT 0,
    status                         TEXT NOT NULL DEFAULT 'discovered',
    notes                          TEXT NOT NULL DEFAULT '',
    created_at                     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
	{"idx_reuse_opportunities_source_material_id", `CREATE INDEX IF NOT EXISTS idx_reuse_opportunities_source_material_id ON reuse_opportunities(source_material_id)`},
	{"idx_reuse_opportunities_target_industry_id", `CREATE INDEX IF NOT EXISTS idx_reuse_opportunities_target_industry_id ON reuse_opportunities(target_industry_id)`},
	{"transactions", `
CREATE TABLE IF NOT EXISTS transactions (
    id                    INTEGER PRIMARY KEY AUTOINCREMENT,
    source_industry_id    INTEGER NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    target_industry_id    INTEGER NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    material_id           INTEGER NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
    quantity_transferred  REAL NOT NULL DEFAULT 0,
    unit                  TEXT NOT NULL DEFAULT '',
    transaction_date      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    status                TEXT NOT NULL DEFAULT 'pending'
                          CHECK (status IN ('pending', 'completed', 'failed')),
    cost_savings          REAL NOT NULL DEFAULT 0,
    environmental_benefit REAL NOT NULL DEFAULT 0
)`},
	{"idx_transactions_material_id", `CREATE INDEX IF NOT EXISTS idx_transactions_material_id ON transactions(material_id)`},
	{"circulation_metrics", `
CREATE TABLE IF NOT EXISTS circulation_metrics (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    industry_id          INTEGER NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    material_name        TEXT NOT NULL DEFAULT '',
    days_to_reabsorption REAL NOT NULL DEFAULT 0,
    circulation_cycles   INTEGER NOT NULL DEFAULT 0,
    reabsorption_rate    REAL NOT NULL DEFAULT 0
                         CHECK (reabsorption_rate >= 0 AND reabsorption_rate <= 1),
    measured_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
	{"idx_circulation_metrics_industry_id", `CREATE INDEX IF NOT EXISTS idx_circulation_metrics_industry_id ON circulation_metrics(industry_id)`},
}

var postgresSchema = []schemaStatement{
	{"industries", `
CREATE TABLE IF NOT EXISTS industries (
    id            BIGSERIAL PRIMARY KEY,
    name          TEXT NOT NULL UNIQUE,
    sector        TEXT NOT NULL,
    location      TEXT NOT NULL DEFAULT '',
    description   TEXT NOT NULL DEFAULT '',
    annual_output DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`},
	{"materials", `
CREATE TABLE IF NOT EXISTS materials (
    id                      BIGSERIAL PRIMARY KEY,
    industry_id             BIGINT NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    name                    TEXT NOT NULL,
    material_type           TEXT NOT NULL DEFAULT '',
    quantity                DOUBLE PRECISION NOT NULL DEFAULT 0,
    unit                    TEXT NOT NULL DEFAULT '',
    chemical_composition    TEXT NOT NULL DEFAULT '',
    mechanical_tolerance    TEXT NOT NULL DEFAULT '',
    thermodynamic_stability TEXT NOT NULL DEFAULT '',
    regulatory_status       TEXT NOT NULL DEFAULT '',
    availability_status     TEXT NOT NULL DEFAULT 'available'
                            CHECK (availability_status IN ('available', 'in_use', 'archived')),
    description             TEXT NOT NULL DEFAULT '',
    created_at              TIMESTAMPTZ NOT NULL DEFAULT now()
)`},
	{"idx_materials_industry_id", `CREATE INDEX IF NOT EXISTS idx_materials_industry_id ON materials(industry_id)`},
	{"reuse_opportunities", `
CREATE TABLE IF NOT EXISTS reuse_opportunities (
    id                             BIGSERIAL PRIMARY KEY,
    source_material_id             BIGINT NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
    target_industry_id             BIGINT NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    compatibility_score            DOUBLE PRECISION NOT NULL DEFAULT 0,
    feasibility_index              DOUBLE PRECISION NOT NULL DEFAULT 0
                                   CHECK (feasibility_index >= 0 AND feasibility_index <= 1),
    preprocessing_required         TEXT NOT NULL DEFAULT '',
    estimated_cost_savings         DOUBLE PRECISION NOT NULL DEFAULT 0,
    environmental_impact_reduction DOUBLE PRECISION NOT NULL DEFAULT 0,
    reliability_rating             DOUBLE PRECISION NOT NULL DEFAULT 0,
    status                         TEXT NOT NULL DEFAULT 'discovered',
    notes                          TEXT NOT NULL DEFAULT '',
    created_at                     TIMESTAMPTZ NOT NULL DEFAULT now()
)`},
	{"idx_reuse_opportunities_source_material_id", `CREATE INDEX IF NOT EXISTS idx_reuse_opportunities_source_material_id ON reuse_opportunities(source_material_id)`},
	{"idx_reuse_opportunities_target_industry_id", `CREATE INDEX IF NOT EXISTS idx_reuse_opportunities_target_industry_id ON reuse_opportunities(target_industry_id)`},
	{"transactions", `
CREATE TABLE IF NOT EXISTS transactions (
    id                    BIGSERIAL PRIMARY KEY,
    source_industry_id    BIGINT NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    target_industry_id    BIGINT NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    material_id           BIGINT NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
    quantity_transferred  DOUBLE PRECISION NOT NULL DEFAULT 0,
    unit                  TEXT NOT NULL DEFAULT '',
    transaction_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
    status                TEXT NOT NULL DEFAULT 'pending'
                          CHECK (status IN ('pending', 'completed', 'failed')),
    cost_savings          DOUBLE PRECISION NOT NULL DEFAULT 0,
    environmental_benefit DOUBLE PRECISION NOT NULL DEFAULT 0
)`},
	{"idx_transactions_material_id", `CREATE INDEX IF NOT EXISTS idx_transactions_material_id ON transactions(material_id)`},
	{"circulation_metrics", `
CREATE TABLE IF NOT EXISTS circulation_metrics (
    id                   BIGSERIAL PRIMARY KEY,
    industry_id          BIGINT NOT NULL REFERENCES industries(id) ON DELETE CASCADE,
    material_name        TEXT NOT NULL DEFAULT '',
    days_to_reabsorption DOUBLE PRECISION NOT NULL DEFAULT 0,
    circulation_cycles   BIGINT NOT NULL DEFAULT 0,
    reabsorption_rate    DOUBLE PRECISION NOT NULL DEFAULT 0
                         CHECK (reabsorption_rate >= 0 AND reabsorption_rate <= 1),
    measured_at          TIMESTAMPTZ NOT NULL DEFAULT now()
)`},
	{"idx_circulation_metrics_industry_id", `CREATE INDEX IF NOT EXISTS idx_circulation_metrics_industry_id ON circulation_metrics(industry_id)`},
}

// Tables lists the registry tables in dependency order.
var Tables = []string{"industries", "materials", "reuse_opportunities", "transactions", "circulation_metrics"}

// InitializeSchema is idempotent: every statement is IF NOT EXISTS. The
// statements run one at a time since the postgres driver rejects batches.
func InitializeSchema(ctx context.Context, gdb *gorm.DB, driver string) error {
	var stmts []schemaStatement
	switch driver {
	case config.DriverSQLite:
		stmts = sqliteSchema
	case config.DriverPostgres:
		stmts = postgresSchema
	default:
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, st := range stmts {
		if err := gdb.WithContext(ctx).Exec(st.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", st.name, err)
		}
	}
	return nil
}
