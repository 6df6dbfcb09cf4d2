package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []struct {
	name string
	sql  string
}{
	{"VEHICLE_BRAND", `
		CREATE TABLE IF NOT EXISTS "VEHICLE_BRAND" (
			"ID" SERIAL PRIMARY KEY,
			"Chave" VARCHAR(100) NOT NULL UNIQUE
		)
	`},
	{"VEHICLE_MODEL", `
		CREATE TABLE IF NOT EXISTS "VEHICLE_MODEL" (
			"ID" SERIAL PRIMARY KEY,
			"BrandID" INTEGER NOT NULL,
			"Nome" VARCHAR(200) NOT NULL,
			CONSTRAINT "fk_model_brand"
				FOREIGN KEY ("BrandID")
				REFERENCES "VEHICLE_BRAND"("ID")
				ON DELETE CASCADE,
			CONSTRAINT "uq_model_brand_nome" UNIQUE ("BrandID", "Nome")
		)
	`},
	{"VEHICLE_MODEL_YEAR", `
		CREATE TABLE IF NOT EXISTS "VEHICLE_MODEL_YEAR" (
			"ModelID" INTEGER NOT NULL,
			"Ano" INTEGER NOT NULL,
			PRIMARY KEY ("ModelID", "Ano"),
			CONSTRAINT "fk_year_model"
				FOREIGN KEY ("ModelID")
				REFERENCES "VEHICLE_MODEL"("ID")
				ON DELETE CASCADE
		)
	`},
	{"idx_model_brand", `
		CREATE INDEX IF NOT EXISTS "idx_model_brand"
		ON "VEHICLE_MODEL"("BrandID")
	`},
}

// RunMigrations creates the catalog tables when they are missing
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", m.name, err)
		}
	}
	return nil
}
