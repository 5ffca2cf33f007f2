// internal/catalog/repository.go
package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

// Repository reads and seeds the products table. The storefront only reads
// it once at startup; writes happen through the migrate command.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load builds a Store from the products table in catalog order.
func (r *Repository) Load(ctx context.Context) (*Store, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("position ASC").Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return New(products)
}

// Upsert writes the given products, keyed by id, recording their position.
func (r *Repository) Upsert(ctx context.Context, products []models.Product) error {
	rows := make([]models.Product, len(products))
	for i, p := range products {
		p.Position = i
		rows[i] = p
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to upsert products: %w", err)
		}
		return nil
	})
}
