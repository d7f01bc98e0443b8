package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

type Order struct {
	ID                 int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber        string            `gorm:"type:varchar(20);not null;uniqueIndex" json:"order_number"`
	Status             OrderStatus       `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal           decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Tax                decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"tax"`
	Shipping           decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"shipping"`
	Total              decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"total"`
	ShippingAddress    Address           `gorm:"type:jsonb;not null" json:"shipping_address"`
	BillingAddress     Address           `gorm:"type:jsonb;not null" json:"billing_address"`
	PaymentMethod      string            `gorm:"type:varchar(50);not null" json:"payment_method"`
	PaymentStatus      PaymentStatus     `gorm:"type:varchar(20);not null" json:"payment_status"`
	DeliveryLocationID *int64            `gorm:"index" json:"delivery_location_id"`
	DeliveryLocation   *DeliveryLocation `gorm:"constraint:OnDelete:SET NULL" json:"delivery_location,omitempty"`
	RequiresDelivery   bool              `gorm:"not null;default:false" json:"requires_delivery"`
	CreatedAt          time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
