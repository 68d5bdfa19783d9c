// Package seed prepares the catalog database before the API starts serving.
//
// Startup runs three phases in order, each usable on its own:
//
//	EnsureSchema  create the products table and any optional columns it lacks
//	SeedIfEmpty   insert the baseline catalog into an empty table
//	Reconcile     rename legacy categories, drop non-baseline rows, upsert the baseline
//
// followed by BackfillImages. Any error is returned to the caller, which is
// expected to stop the process.
package seed

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"go-inventory-catalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// optionalColumns were added after the first release and may be missing from older databases.
var optionalColumns = []string{"Description", "ImageURL"}

// baselineColumns are overwritten from the baseline when a SKU already exists.
var baselineColumns = []string{"name", "category", "price", "quantity", "description", "image_url"}

type Options struct {
	// Reconcile drops rows outside the baseline and resets baseline rows.
	// Legacy category renames run either way.
	Reconcile bool
}

// Report summarises what a Run changed.
type Report struct {
	Seeded     int
	Renamed    int64
	Removed    int64
	Upserted   int
	Backfilled int64
}

// Run executes every startup phase against db.
func Run(db *gorm.DB, opts Options) (Report, error) {
	var report Report
	baseline := Baseline()

	if err := EnsureSchema(db); err != nil {
		return report, err
	}

	seeded, err := SeedIfEmpty(db, baseline)
	if err != nil {
		return report, err
	}
	report.Seeded = seeded

	if opts.Reconcile {
		res, err := Reconcile(db, baseline)
		if err != nil {
			return report, err
		}
		report.Renamed = res.Renamed
		report.Removed = res.Removed
		report.Upserted = res.Upserted
	} else {
		renamed, err := NormalizeCategories(db)
		if err != nil {
			return report, err
		}
		report.Renamed = renamed
	}

	backfilled, err := BackfillImages(db)
	if err != nil {
		return report, err
	}
	report.Backfilled = backfilled

	log.Printf("Catalog ready: seeded=%d renamed=%d removed=%d upserted=%d backfilled=%d",
		report.Seeded, report.Renamed, report.Removed, report.Upserted, report.Backfilled)
	return report, nil
}

// EnsureSchema creates the products table if absent and adds optional columns.
// A column that turns out to exist already is not an error.
func EnsureSchema(db *gorm.DB) error {
	m := db.Migrator()

	if !m.HasTable(&model.Product{}) {
		if err := m.CreateTable(&model.Product{}); err != nil {
			return fmt.Errorf("seed: create products table: %w", err)
		}
	}

	for _, field := range optionalColumns {
		if m.HasColumn(&model.Product{}, field) {
			continue
		}
		if err := m.AddColumn(&model.Product{}, field); err != nil && !isDuplicateColumn(err) {
			return fmt.Errorf("seed: add column %s: %w", field, err)
		}
	}
	return nil
}

// SeedIfEmpty inserts the baseline when the table has no rows and returns how many were inserted.
func SeedIfEmpty(db *gorm.DB, baseline []model.Product) (int, error) {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 || len(baseline) == 0 {
		return 0, nil
	}

	rows := detach(baseline)
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, fmt.Errorf("seed: insert baseline: %w", err)
	}
	return len(rows), nil
}

// ReconcileResult reports the row counts touched by Reconcile.
type ReconcileResult struct {
	Renamed  int64
	Removed  int64
	Upserted int
}

// Reconcile makes the table match the baseline exactly: legacy category labels
// are renamed, rows whose SKU is not in the baseline are deleted, and every
// baseline row is inserted or overwritten. It runs in a single transaction.
func Reconcile(db *gorm.DB, baseline []model.Product) (ReconcileResult, error) {
	var res ReconcileResult

	err := db.Transaction(func(tx *gorm.DB) error {
		renamed, err := renameLegacyCategories(tx)
		if err != nil {
			return err
		}
		res.Renamed = renamed

		skus := make([]string, 0, len(baseline))
		for _, p := range baseline {
			skus = append(skus, p.SKU)
		}

		var del *gorm.DB
		if len(skus) == 0 {
			del = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Product{})
		} else {
			del = tx.Where("sku NOT IN ?", skus).Delete(&model.Product{})
		}
		if del.Error != nil {
			return fmt.Errorf("seed: remove non-baseline rows: %w", del.Error)
		}
		res.Removed = del.RowsAffected

		if len(baseline) == 0 {
			return nil
		}
		rows := detach(baseline)
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns(baselineColumns),
		}).Create(&rows).Error
		if err != nil {
			return fmt.Errorf("seed: upsert baseline: %w", err)
		}
		res.Upserted = len(rows)
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}
	return res, nil
}

// NormalizeCategories renames legacy category labels without touching anything else.
func NormalizeCategories(db *gorm.DB) (int64, error) {
	var renamed int64
	err := db.Transaction(func(tx *gorm.DB) error {
		n, err := renameLegacyCategories(tx)
		renamed = n
		return err
	})
	return renamed, err
}

func renameLegacyCategories(tx *gorm.DB) (int64, error) {
	legacy := make([]string, 0, len(model.LegacyCategories))
	for name := range model.LegacyCategories {
		legacy = append(legacy, name)
	}
	sort.Strings(legacy)

	var total int64
	for _, from := range legacy {
		res := tx.Model(&model.Product{}).
			Where("category = ?", from).
			Update("category", model.LegacyCategories[from])
		if res.Error != nil {
			return 0, fmt.Errorf("seed: rename category %q: %w", from, res.Error)
		}
		total += res.RowsAffected
	}
	return total, nil
}

// BackfillImages sets the category default image on rows without one.
func BackfillImages(db *gorm.DB) (int64, error) {
	const missing = "(image_url IS NULL OR image_url = '')"

	var total int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var categories []string
		if err := tx.Model(&model.Product{}).
			Where(missing).
			Distinct("category").
			Pluck("category", &categories).Error; err != nil {
			return fmt.Errorf("seed: find rows without image: %w", err)
		}

		for _, category := range categories {
			res := tx.Model(&model.Product{}).
				Where(missing+" AND category = ?", category).
				Update("image_url", model.CategoryDefaultImage(category))
			if res.Error != nil {
				return fmt.Errorf("seed: backfill images for %q: %w", category, res.Error)
			}
			total += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// detach copies rows with zeroed ids so the caller's slice is never mutated.
func detach(products []model.Product) []model.Product {
	rows := make([]model.Product, len(products))
	copy(rows, products)
	for i := range rows {
		rows[i].ID = 0
	}
	return rows
}

func isDuplicateColumn(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
