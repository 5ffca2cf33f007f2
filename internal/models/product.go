// internal/models/product.go
package models

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is a catalog record. Values are shared read-only between the
// catalog, search results and cart line items; nothing mutates them after load.
type Product struct {
	BaseModel
	ID              uint             `json:"id" yaml:"id" gorm:"primaryKey;autoIncrement:false"`
	Name            string           `json:"name" yaml:"name" gorm:"size:255;not null"`
	Slug            string           `json:"slug" yaml:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description     string           `json:"description" yaml:"description" gorm:"type:text"`
	LongDescription string           `json:"long_description" yaml:"longDescription" gorm:"type:text"`
	Price           decimal.Decimal  `json:"price" yaml:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty" yaml:"originalPrice,omitempty" gorm:"type:decimal(10,2)"`
	Discount        string           `json:"discount,omitempty" yaml:"discount,omitempty" gorm:"size:50"`
	Rating          int              `json:"rating" yaml:"rating" gorm:"default:0"`
	Reviews         string           `json:"reviews" yaml:"reviews" gorm:"size:50"`
	Image           string           `json:"image" yaml:"image" gorm:"size:255"`
	Category        Category         `json:"category" yaml:"category" gorm:"size:100;index"`
	IsPopular       bool             `json:"is_popular" yaml:"isPopular" gorm:"default:false"`
	Ingredients     string           `json:"ingredients" yaml:"ingredients" gorm:"type:text"`
	FreeFrom        pq.StringArray   `json:"free_from" yaml:"freeFrom" gorm:"type:text[]"`
	KeyIngredients  pq.StringArray   `json:"key_ingredients" yaml:"keyIngredients" gorm:"type:text[]"`

	// Position records catalog order when products live in the database.
	Position int `json:"-" yaml:"-" gorm:"not null;default:0;index"`
}

// OnSale reports whether the product carries a discount annotation.
func (p Product) OnSale() bool {
	return p.Discount != ""
}
