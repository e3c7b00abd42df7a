package database

import (
	"fmt"

	"gorm.io/gorm"

	"zaad-backend/models"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Indexes (records, revisions, invoices, documents)
// - Basic CHECK constraints
// - Idempotency keys unique index
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Company{},
			&models.Employee{},
			&models.Document{},
			&models.Credential{},
			&models.Record{},
			&models.RecordRevision{},
			&models.Invoice{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE records  ALTER COLUMN amount      TYPE numeric(12,2)`,
			`ALTER TABLE records  ALTER COLUMN service_fee TYPE numeric(12,2)`,
			`ALTER TABLE invoices ALTER COLUMN amount      TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_record_revisions_record_id_revision_no ON record_revisions (record_id, revision_no)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_invoices_suffix_number ON invoices (suffix, number)`,
			`CREATE INDEX IF NOT EXISTS idx_records_type_method ON records (type, method)`,
			`CREATE INDEX IF NOT EXISTS idx_records_date ON records (date)`,
			`CREATE INDEX IF NOT EXISTS idx_documents_expiry_date ON documents (expiry_date)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Record amounts are non-negative; sign lives in the type column.
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'records'::regclass
					  AND conname  = 'chk_records_amount_nonneg'
				) THEN
					ALTER TABLE records
					ADD CONSTRAINT chk_records_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			// Record type is a closed set.
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'records'::regclass
					  AND conname  = 'chk_records_type'
				) THEN
					ALTER TABLE records
					ADD CONSTRAINT chk_records_type
					CHECK (type IN ('income', 'expense'));
				END IF;
			END $$;`,
			// Invoice amounts are non-negative.
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoices'::regclass
					  AND conname  = 'chk_invoices_amount_nonneg'
				) THEN
					ALTER TABLE invoices
					ADD CONSTRAINT chk_invoices_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
