package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CategoryID *int64
	Featured   *bool
	Sort       string
}

type ProductRepository interface {
	//公開中（is_active=true）のみ
	ListActive(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
}
