package repos

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

const createProductos = `
CREATE TABLE IF NOT EXISTS productos(
  id         BIGSERIAL PRIMARY KEY,
  name       TEXT NOT NULL CHECK (btrim(name) <> ''),
  condition  TEXT CHECK (condition IN ('new','used')),
  link       TEXT,
  price_usd  NUMERIC(12,2),
  price_ars  NUMERIC(12,2),
  price_clp  NUMERIC(12,2),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Columns that older deployments may be missing. Earlier schema revisions
// shipped without link or the wholesale/retail prices, so each one is added
// only after an existence check against information_schema.
var migratedColumns = []struct {
	name string
	ddl  string
}{
	{"link", `ALTER TABLE productos ADD COLUMN link TEXT`},
	{"price_wholesale", `ALTER TABLE productos ADD COLUMN price_wholesale NUMERIC(12,2)`},
	{"price_retail", `ALTER TABLE productos ADD COLUMN price_retail NUMERIC(12,2)`},
}

var productIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_productos_name ON productos(LOWER(name))`,
	`CREATE INDEX IF NOT EXISTS idx_productos_condition ON productos(condition)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_created_at ON productos(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_price_usd ON productos(price_usd)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_price_ars ON productos(price_ars)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_price_clp ON productos(price_clp)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_price_wholesale ON productos(price_wholesale)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_price_retail ON productos(price_retail)`,
}

const setUpdatedAtFn = `
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN
  NEW.updated_at = now();
  RETURN NEW;
END;
$$ LANGUAGE plpgsql`

// EnsureSchema brings the productos table to the current shape. Safe to run
// on every startup against any prior schema revision, including a partially
// migrated one.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createProductos); err != nil {
		return fmt.Errorf("create productos: %w", err)
	}

	for _, col := range migratedColumns {
		exists, err := columnExists(ctx, db, "productos", col.name)
		if err != nil {
			return fmt.Errorf("check column %s: %w", col.name, err)
		}
		if exists {
			continue
		}
		if _, err := db.ExecContext(ctx, col.ddl); err != nil {
			return fmt.Errorf("add column %s: %w", col.name, err)
		}
	}

	for _, ddl := range productIndexes {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, setUpdatedAtFn); err != nil {
		return fmt.Errorf("create set_updated_at: %w", err)
	}
	// Re-registering the trigger every start keeps it pointed at the current
	// function body.
	if _, err := db.ExecContext(ctx, `DROP TRIGGER IF EXISTS productos_set_updated_at ON productos`); err != nil {
		return fmt.Errorf("drop trigger: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TRIGGER productos_set_updated_at
		BEFORE UPDATE ON productos
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`); err != nil {
		return fmt.Errorf("create trigger: %w", err)
	}

	log.Printf("[schema] productos ready")
	return nil
}

func columnExists(ctx context.Context, db *sqlx.DB, table, column string) (bool, error) {
	var exists bool
	err := db.GetContext(ctx, &exists, `
		SELECT EXISTS (
		  SELECT 1 FROM information_schema.columns
		  WHERE table_schema = current_schema()
		    AND table_name = $1 AND column_name = $2
		)`, table, column)
	return exists, err
}
