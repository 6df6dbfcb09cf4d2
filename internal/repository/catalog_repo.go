package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vehicle-lookup-api/internal/catalog"
)

// CatalogRepo stores the vehicle catalog in Postgres. It implements
// catalog.Source.
type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{db: db}
}

var _ catalog.Source = (*CatalogRepo)(nil)

type catalogRow struct {
	Brand string
	Model *string
	Year  *int
}

// Load reads every brand, model and year.
func (r *CatalogRepo) Load(ctx context.Context) (catalog.Data, error) {
	query := `
		SELECT b."Chave", m."Nome", y."Ano"
		FROM "VEHICLE_BRAND" b
		LEFT JOIN "VEHICLE_MODEL" m ON m."BrandID" = b."ID"
		LEFT JOIN "VEHICLE_MODEL_YEAR" y ON y."ModelID" = m."ID"
		ORDER BY b."Chave", m."Nome", y."Ano"
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var catalogRows []catalogRow
	for rows.Next() {
		var row catalogRow
		if err := rows.Scan(&row.Brand, &row.Model, &row.Year); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		catalogRows = append(catalogRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog: %w", err)
	}

	return foldRows(catalogRows), nil
}

// foldRows rebuilds the nested catalog from joined rows. A model with no
// year rows keeps an empty year list.
func foldRows(rows []catalogRow) catalog.Data {
	data := make(catalog.Data)
	for _, row := range rows {
		models, ok := data[row.Brand]
		if !ok {
			models = make(map[string][]int)
			data[row.Brand] = models
		}
		if row.Model == nil {
			continue
		}
		years, ok := models[*row.Model]
		if !ok {
			years = []int{}
		}
		if row.Year != nil {
			years = append(years, *row.Year)
		}
		models[*row.Model] = years
	}
	return data
}

// ImportStats counts what Import wrote
type ImportStats struct {
	Brands int
	Models int
	Years  int
}

// Import writes c into the catalog tables in one transaction. With replace
// set, existing rows are removed first; otherwise rows are upserted.
func (r *CatalogRepo) Import(ctx context.Context, c *catalog.Catalog, replace bool) (*ImportStats, error) {
	stats := &ImportStats{}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if replace {
			if _, err := tx.Exec(ctx, `DELETE FROM "VEHICLE_BRAND"`); err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
		}

		for _, b := range c.Brands() {
			var brandID int
			err := tx.QueryRow(ctx, `
				INSERT INTO "VEHICLE_BRAND" ("Chave") VALUES ($1)
				ON CONFLICT ("Chave") DO UPDATE SET "Chave" = EXCLUDED."Chave"
				RETURNING "ID"
			`, b.Key).Scan(&brandID)
			if err != nil {
				return fmt.Errorf("failed to insert brand %s: %w", b.Key, err)
			}
			stats.Brands++

			for _, m := range b.Models {
				var modelID int
				err := tx.QueryRow(ctx, `
					INSERT INTO "VEHICLE_MODEL" ("BrandID", "Nome") VALUES ($1, $2)
					ON CONFLICT ("BrandID", "Nome") DO UPDATE SET "Nome" = EXCLUDED."Nome"
					RETURNING "ID"
				`, brandID, m.Name).Scan(&modelID)
				if err != nil {
					return fmt.Errorf("failed to insert model %s %s: %w", b.Key, m.Name, err)
				}
				stats.Models++

				if len(m.Years) == 0 {
					continue
				}

				batch := &pgx.Batch{}
				for _, year := range m.Years {
					batch.Queue(`
						INSERT INTO "VEHICLE_MODEL_YEAR" ("ModelID", "Ano") VALUES ($1, $2)
						ON CONFLICT DO NOTHING
					`, modelID, year)
				}
				if err := tx.SendBatch(ctx, batch).Close(); err != nil {
					return fmt.Errorf("failed to insert years for %s %s: %w", b.Key, m.Name, err)
				}
				stats.Years += len(m.Years)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Ping checks the database connection
func (r *CatalogRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
