package repository

import (
	"context"
	"path/filepath"
	"testing"

	"go-inventory-catalog/internal/model"
	"go-inventory-catalog/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Options{
		Driver:   database.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "catalog.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func product(name, category, sku string, price string, qty int) *model.Product {
	return &model.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
		SKU:      sku,
	}
}

func seedProducts(t *testing.T, repo ProductRepository) []*model.Product {
	t.Helper()
	items := []*model.Product{
		product("Innova Aviar", "Putter", "DG-012", "13.99", 50),
		product("Discraft Zeus", "Distance Driver", "DG-002", "17.99", 18),
		product("axiom envy", "Putter", "DG-015", "15.99", 3),
		product("MVP Black Hole Pro Basket", "Accessories and baskets", "BASKET-100%", "289.99", 0),
	}
	for _, p := range items {
		require.NoError(t, repo.Create(context.Background(), p))
	}
	return items
}

func names(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestCreateAssignsFreshIDs(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	items := seedProducts(t, repo)

	seen := map[uint]bool{}
	for _, p := range items {
		assert.NotZero(t, p.ID)
		assert.False(t, seen[p.ID], "id %d reused", p.ID)
		seen[p.ID] = true
	}
}

func TestCreateDuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, product("Widget", "Putter", "X-1", "9.99", 5)))
	err := repo.Create(ctx, product("Other Widget", "Putter", "X-1", "1.00", 1))
	assert.ErrorIs(t, err, ErrDuplicateSKU)

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Where("sku = ?", "X-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindByID(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	items := seedProducts(t, repo)

	got, err := repo.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Innova Aviar", got.Name)
	assert.True(t, decimal.RequireFromString("13.99").Equal(got.Price))

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllSortedByName(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	seedProducts(t, repo)

	all, err := repo.FindAll(context.Background(), model.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Discraft Zeus", "Innova Aviar", "MVP Black Hole Pro Basket", "axiom envy"}, names(all))
}

func TestFindAllFilters(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	seedProducts(t, repo)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter model.ProductFilter
		want   []string
	}{
		{"search name case-insensitive", model.ProductFilter{Search: "AVIAR"}, []string{"Innova Aviar"}},
		{"search sku", model.ProductFilter{Search: "dg-0"}, []string{"Discraft Zeus", "Innova Aviar", "axiom envy"}},
		{"search literal percent", model.ProductFilter{Search: "100%"}, []string{"MVP Black Hole Pro Basket"}},
		{"percent is not a wildcard", model.ProductFilter{Search: "%"}, []string{"MVP Black Hole Pro Basket"}},
		{"category", model.ProductFilter{Category: "Putter"}, []string{"Innova Aviar", "axiom envy"}},
		{"category sentinel", model.ProductFilter{Category: model.AllCategories}, []string{"Discraft Zeus", "Innova Aviar", "MVP Black Hole Pro Basket", "axiom envy"}},
		{"search and category", model.ProductFilter{Search: "envy", Category: "Putter"}, []string{"axiom envy"}},
		{"search and other category", model.ProductFilter{Search: "envy", Category: "Distance Driver"}, []string{}},
		{"whitespace is part of the term", model.ProductFilter{Search: "  "}, []string{}},
		{"single space matches names with spaces", model.ProductFilter{Search: "a "}, []string{"Innova Aviar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindAll(ctx, tt.filter)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFindAllSearchFoldsNonASCII(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, product("Ääni Putteri", "Putter", "FI-1", "12.00", 4)))
	require.NoError(t, repo.Create(ctx, product("Öljy Driver", "Distance Driver", "FI-2", "18.00", 2)))

	for _, term := range []string{"Ääni", "ääni", "ÄÄNI", "äÄn", "putteri"} {
		got, err := repo.FindAll(ctx, model.ProductFilter{Search: term})
		require.NoError(t, err, term)
		assert.Equal(t, []string{"Ääni Putteri"}, names(got), term)
	}

	stats, err := repo.Stats(ctx, model.ProductFilter{Search: "ÖLJY"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 2, stats.TotalStock)
}

func TestUpdate(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	items := seedProducts(t, repo)

	change := product("Innova Aviar Classic", "Putter", "DG-012A", "12.50", 7)
	change.Description = "reissued"
	updated, err := repo.Update(ctx, items[0].ID, change)
	require.NoError(t, err)
	assert.Equal(t, items[0].ID, updated.ID)

	got, err := repo.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Innova Aviar Classic", got.Name)
	assert.Equal(t, "DG-012A", got.SKU)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, "reissued", got.Description)
	assert.Equal(t, "12.5", got.Price.String())
}

func TestUpdateErrors(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	items := seedProducts(t, repo)

	_, err := repo.Update(ctx, 9999, product("Nope", "Putter", "NOPE", "1", 1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, items[0].ID, product("Clash", "Putter", items[1].SKU, "1", 1))
	assert.ErrorIs(t, err, ErrDuplicateSKU)

	got, err := repo.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "DG-012", got.SKU)
}

func TestUpdateQuantity(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	items := seedProducts(t, repo)

	got, err := repo.UpdateQuantity(ctx, items[0].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	got, err = repo.UpdateQuantity(ctx, items[0].ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)

	_, err = repo.UpdateQuantity(ctx, items[0].ID, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	got, err = repo.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)

	_, err = repo.UpdateQuantity(ctx, 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()
	items := seedProducts(t, repo)

	require.NoError(t, repo.Delete(ctx, items[1].ID))
	_, err := repo.FindByID(ctx, items[1].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 9999), ErrNotFound)
	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestCategories(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, cats)

	seedProducts(t, repo)
	cats, err = repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories and baskets", "Distance Driver", "Putter"}, cats)
}

func TestStats(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	empty, err := repo.Stats(ctx, model.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, empty.TotalProducts)
	assert.True(t, empty.TotalValuation.IsZero())

	seedProducts(t, repo)
	stats, err := repo.Stats(ctx, model.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalProducts)
	assert.EqualValues(t, 71, stats.TotalStock)
	assert.EqualValues(t, 2, stats.LowStockCount)
	// 50*13.99 + 18*17.99 + 3*15.99 + 0*289.99
	assert.Equal(t, "1071.29", stats.TotalValuation.StringFixed(2))

	putters, err := repo.Stats(ctx, model.ProductFilter{Category: "Putter"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, putters.TotalProducts)
	assert.EqualValues(t, 53, putters.TotalStock)
	assert.EqualValues(t, 1, putters.LowStockCount)
}
