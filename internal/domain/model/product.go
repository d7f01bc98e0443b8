package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string           `gorm:"type:varchar(255);not null" json:"name"`
	Slug         string           `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description  string           `gorm:"type:text" json:"description"`
	Price        decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"price"`
	ComparePrice *decimal.Decimal `gorm:"type:numeric(10,2)" json:"compare_price"`
	Quantity     int64            `gorm:"not null;default:0" json:"quantity"`
	IsActive     bool             `gorm:"not null;default:false" json:"is_active"`
	IsFeatured   bool             `gorm:"not null;default:false" json:"is_featured"`
	Image        string           `gorm:"type:varchar(500)" json:"image"`
	CategoryID   *int64           `gorm:"index" json:"category_id"`
	Category     *Category        `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	CreatedAt    time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
