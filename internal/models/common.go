// internal/models/common.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Base model with common fields. Catalog rows keep their seeded integer ids,
// so the primary key is declared by each model instead of here.
type BaseModel struct {
	CreatedAt time.Time      `json:"-" yaml:"-"`
	UpdatedAt time.Time      `json:"-" yaml:"-"`
	DeletedAt gorm.DeletedAt `json:"-" yaml:"-" gorm:"index"`
}

// Enums
type Category string

const (
	CategoryFaceWash  Category = "Face Wash"
	CategoryHandSoaps Category = "Hand Soaps"
	CategoryBodyWash  Category = "Body Wash"
)

type SkinType string

const (
	SkinTypeSensitive   SkinType = "Sensitive"
	SkinTypeDry         SkinType = "Dry"
	SkinTypeOily        SkinType = "Oily"
	SkinTypeCombination SkinType = "Combination"
	SkinTypeAcneProne   SkinType = "Acne-Prone"
	SkinTypeNormal      SkinType = "Normal"
)

type PaymentMethod string

const (
	PaymentMethodCredit PaymentMethod = "credit"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusFailed    OrderStatus = "failed"
)
