package infra

import (
	"fmt"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for all models, then applies idempotent SQL patches that GORM cannot
// express: the single-open-caixa partial unique index, the non-negative
// stock CHECK, and the default category seed.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Map pg unique violations onto gorm.ErrDuplicatedKey so services
		// can translate them (caixa open race, duplicate category).
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Produto{},
		&model.Categoria{},
		&model.Caixa{},
		&model.Venda{},
		&model.VendaItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL statements that AutoMigrate cannot
// fully handle on its own. Each statement uses IF NOT EXISTS / DO NOTHING
// semantics so re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// At most one open caixa system-wide. This is the authoritative
		// guard: concurrent /caixa/abrir requests race on the INSERT and
		// exactly one wins; the loser surfaces a unique violation.
		{"partial unique index on open caixa", `
CREATE UNIQUE INDEX IF NOT EXISTS uni_caixas_aberto
    ON caixas (status)
    WHERE status = 'aberto'`},

		// Stock can never go negative, even if a bug bypasses the
		// conditional decrement in the sale transaction.
		{"non-negative stock check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_produtos_quantidade') THEN
    ALTER TABLE produtos ADD CONSTRAINT chk_produtos_quantidade CHECK (quantidade >= 0);
  END IF;
END $$`},

		// Default category set. The set is open: the categories endpoint
		// can grow it at runtime.
		{"seed default categories", `
INSERT INTO categorias (nome)
VALUES ('eletronicos'), ('acessorios'), ('cosmeticos'), ('utilidades'), ('outros')
ON CONFLICT (nome) DO NOTHING`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
