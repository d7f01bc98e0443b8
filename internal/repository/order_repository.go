package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//注文番号が衝突したら ErrDuplicate を返す
	Create(ctx context.Context, order model.Order) (int64, error)
}
