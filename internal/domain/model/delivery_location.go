package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryLocation struct {
	ID          int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Region      string           `gorm:"type:varchar(255);not null;default:'West Coast'" json:"region"`
	DeliveryFee *decimal.Decimal `gorm:"type:numeric(10,2)" json:"delivery_fee"` // null = 配送無料
	IsActive    bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
