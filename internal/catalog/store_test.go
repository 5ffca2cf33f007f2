package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

func loadSeed(t *testing.T) *Store {
	t.Helper()
	store, err := LoadEmbedded()
	require.NoError(t, err)
	return store
}

func slugsOf(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}

func TestLoadEmbedded(t *testing.T) {
	store := loadSeed(t)
	assert.Equal(t, 15, store.Len())

	first := store.All()[0]
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, "dermaquench", first.Slug)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("16.99")))
	require.NotNil(t, first.OriginalPrice)
	assert.True(t, first.OriginalPrice.Equal(decimal.RequireFromString("24.99")))
	assert.Equal(t, []string{"hyaluronic acid", "colloidal oatmeal", "provitamin B5"}, []string(first.KeyIngredients))
	assert.Contains(t, first.LongDescription, "\n\n")
}

func TestFindBySlug(t *testing.T) {
	store := loadSeed(t)

	p, ok := store.FindBySlug("hydra-luxe")
	require.True(t, ok)
	assert.Equal(t, uint(12), p.ID)

	_, ok = store.FindBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestFindByID(t *testing.T) {
	store := loadSeed(t)

	p, ok := store.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "pureb-body-wash", p.Slug)

	_, ok = store.FindByID(99)
	assert.False(t, ok)
}

func TestFindByCategoryPreservesOrder(t *testing.T) {
	store := loadSeed(t)

	assert.Equal(t,
		[]string{"gentle-guard", "moisture-lock", "kitchen-fresh", "sensitive-touch"},
		slugsOf(store.FindByCategory(models.CategoryHandSoaps)))

	body := store.FindByCategory(models.CategoryBodyWash)
	assert.Equal(t, "pureb-body-wash", body[0].Slug)
	assert.Len(t, body, 5)

	unknown := store.FindByCategory("Shampoo")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestCategories(t *testing.T) {
	store := loadSeed(t)

	assert.Equal(t, []CategoryCount{
		{Name: models.CategoryFaceWash, Count: 6},
		{Name: models.CategoryHandSoaps, Count: 4},
		{Name: models.CategoryBodyWash, Count: 5},
	}, store.Categories())
}

func TestOnSaleAndPopular(t *testing.T) {
	store := loadSeed(t)

	for _, p := range store.OnSale() {
		assert.NotEmpty(t, p.Discount, p.Slug)
	}
	assert.Len(t, store.OnSale(), 9)

	assert.Equal(t,
		[]string{"dermaquench", "skinlogic-foam", "gentle-guard", "hydra-luxe"},
		slugsOf(store.Popular()))
}

func TestPriceBounds(t *testing.T) {
	store := loadSeed(t)

	low, high := store.PriceBounds()
	assert.Equal(t, "12.99", low.StringFixed(2))
	assert.Equal(t, "26.99", high.StringFixed(2))
}

func TestAllReturnsCopy(t *testing.T) {
	store := loadSeed(t)

	all := store.All()
	all[0] = models.Product{}

	p, ok := store.FindBySlug("dermaquench")
	require.True(t, ok)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "dermaquench", store.All()[0].Slug)
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	lower := decimal.RequireFromString("9.00")

	tests := []struct {
		name     string
		products []models.Product
		wantErr  error
	}{
		{"empty", nil, ErrEmptyCatalog},
		{"duplicate id", []models.Product{
			{ID: 1, Slug: "a", Price: price},
			{ID: 1, Slug: "b", Price: price},
		}, ErrDuplicateID},
		{"duplicate slug", []models.Product{
			{ID: 1, Slug: "a", Price: price},
			{ID: 2, Slug: "a", Price: price},
		}, ErrDuplicateSlug},
		{"zero price", []models.Product{{ID: 1, Slug: "a"}}, ErrInvalidRecord},
		{"original below price", []models.Product{{ID: 1, Slug: "a", Price: price, OriginalPrice: &lower}}, ErrInvalidRecord},
		{"rating out of range", []models.Product{{ID: 1, Slug: "a", Price: price, Rating: 6}}, ErrInvalidRecord},
		{"zero id", []models.Product{{Slug: "a", Price: price}}, ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	doc := "products:\n  - id: 1\n    slug: a\n    price: \"1.00\"\n    colour: red\n"
	_, err := Decode(strings.NewReader(doc))
	assert.Error(t, err)
}
