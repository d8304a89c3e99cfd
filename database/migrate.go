package database

import (
	"fmt"

	"orion-backend/models"

	"gorm.io/gorm"
)

// MigrateTenantSchema applies (idempotent) schema migrations for a single tenant schema.
// It pins search_path to the tenant and performs:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Indexes (job card numbers, document numbers, line_items)
// - Foreign key: line_items.job_card_id → job_cards.id
// - Basic CHECK constraints (quantities, prices, status and item_type domains)
func MigrateTenantSchema(schema string) error {
	if schema == "" {
		return fmt.Errorf("schema name is empty")
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		// Pin the tenant schema for this transaction
		if err := tx.Exec(`SET search_path = "` + schema + `", public`).Error; err != nil {
			return fmt.Errorf("set search_path failed: %w", err)
		}

		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.Client{},
			&models.Technician{},
			&models.JobCard{},
			&models.LineItem{},
			&models.Quote{},
			&models.Invoice{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("tenant automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE line_items ALTER COLUMN unit_price TYPE numeric(12,2)`,
			`ALTER TABLE job_cards  ALTER COLUMN total      TYPE numeric(12,2)`,
			`ALTER TABLE quotes     ALTER COLUMN subtotal   TYPE numeric(12,2)`,
			`ALTER TABLE quotes     ALTER COLUMN tax_total  TYPE numeric(12,2)`,
			`ALTER TABLE quotes     ALTER COLUMN total      TYPE numeric(12,2)`,
			`ALTER TABLE invoices   ALTER COLUMN subtotal   TYPE numeric(12,2)`,
			`ALTER TABLE invoices   ALTER COLUMN tax_total  TYPE numeric(12,2)`,
			`ALTER TABLE invoices   ALTER COLUMN total      TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_job_cards_job_card_number ON job_cards (job_card_number)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_quotes_quote_number ON quotes (quote_number)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_invoices_invoice_number ON invoices (invoice_number)`,
			`CREATE INDEX IF NOT EXISTS idx_line_items_job_card ON line_items (job_card_id)`,
			`CREATE INDEX IF NOT EXISTS idx_job_cards_status ON job_cards (status)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Foreign key: line_items.job_card_id -> job_cards.id (CASCADE on delete) ---
		fk := `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1
		FROM pg_constraint
		WHERE conrelid = 'line_items'::regclass
		  AND conname  = 'fk_line_items_job_card'
	) THEN
		ALTER TABLE line_items
		ADD CONSTRAINT fk_line_items_job_card
		FOREIGN KEY (job_card_id)
		REFERENCES job_cards(id)
		ON UPDATE RESTRICT
		ON DELETE CASCADE;
	END IF;
END $$;`
		if err := tx.Exec(fk).Error; err != nil {
			return fmt.Errorf("foreign key migration failed: %w", err)
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Non-negative line item quantity/price
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'line_items'::regclass
					  AND conname  = 'chk_line_items_quantity_nonneg'
				) THEN
					ALTER TABLE line_items
					ADD CONSTRAINT chk_line_items_quantity_nonneg
					CHECK (quantity >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'line_items'::regclass
					  AND conname  = 'chk_line_items_unit_price_nonneg'
				) THEN
					ALTER TABLE line_items
					ADD CONSTRAINT chk_line_items_unit_price_nonneg
					CHECK (unit_price >= 0);
				END IF;
			END $$;`,
			// Item type domain: parts | labour
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'line_items'::regclass
					  AND conname  = 'chk_line_items_item_type'
				) THEN
					ALTER TABLE line_items
					ADD CONSTRAINT chk_line_items_item_type
					CHECK (item_type IN ('parts', 'labour'));
				END IF;
			END $$;`,
			// Status domain: the 11-state job card lifecycle
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'job_cards'::regclass
					  AND conname  = 'chk_job_cards_status'
				) THEN
					ALTER TABLE job_cards
					ADD CONSTRAINT chk_job_cards_status
					CHECK (status IN ('received', 'diagnosing', 'diagnosed', 'quoted', 'approved',
						'in_progress', 'awaiting_parts', 'quality_check', 'completed', 'invoiced', 'collected'));
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
