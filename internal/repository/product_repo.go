package repository

import (
	"context"
	"errors"
	"strings"

	"go-inventory-catalog/internal/model"

	"gorm.io/gorm"
)

// ProductRepository is the catalog store.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	Update(ctx context.Context, id uint, product *model.Product) (*model.Product, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context, filter model.ProductFilter) (*model.InventoryStats, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	product.ID = 0
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU
		}
		return err
	}
	return nil
}

func (r *productRepo) FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products := []model.Product{}
	err := applyFilter(r.db.WithContext(ctx).Model(&model.Product{}), filter).
		Order("name ASC").Order("id ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update overwrites every mutable field of the row with the given id.
func (r *productRepo) Update(ctx context.Context, id uint, product *model.Product) (*model.Product, error) {
	var updated *model.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&model.Product{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":        product.Name,
				"category":    product.Category,
				"price":       product.Price,
				"quantity":    product.Quantity,
				"sku":         product.SKU,
				"description": product.Description,
				"image_url":   product.ImageURL,
			})
		if res.Error != nil {
			if isUniqueViolation(res.Error) {
				return ErrDuplicateSKU
			}
			return res.Error
		}

		existing.Name = product.Name
		existing.Category = product.Category
		existing.Price = product.Price
		existing.Quantity = product.Quantity
		existing.SKU = product.SKU
		existing.Description = product.Description
		existing.ImageURL = product.ImageURL
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *productRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) (*model.Product, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) Stats(ctx context.Context, filter model.ProductFilter) (*model.InventoryStats, error) {
	var stats model.InventoryStats
	base := func() *gorm.DB {
		return applyFilter(r.db.WithContext(ctx).Model(&model.Product{}), filter)
	}

	if err := base().Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	if err := base().Where("quantity <= ?", model.LowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	row := base().Select("COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * price), 0)").Row()
	if err := row.Scan(&stats.TotalStock, &stats.TotalValuation); err != nil {
		return nil, err
	}
	stats.TotalValuation = stats.TotalValuation.Round(2)

	return &stats, nil
}

// applyFilter adds the search and category conditions. Search is a
// case-insensitive substring match on name or sku with LIKE wildcards escaped.
// Both sides go through the database's LOWER so they fold the same way; the
// term is used as given, whitespace included.
func applyFilter(tx *gorm.DB, filter model.ProductFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + escapeLike(filter.Search) + "%"
		tx = tx.Where(`(LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(sku) LIKE LOWER(?) ESCAPE '\')`, like, like)
	}
	if filter.HasCategory() {
		tx = tx.Where("category = ?", filter.Category)
	}
	return tx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
