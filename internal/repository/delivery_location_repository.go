package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type DeliveryLocationRepository interface {
	//公開中のみ、名前順
	ListActive(ctx context.Context) ([]model.DeliveryLocation, error)
	FindByID(ctx context.Context, locationID int64) (model.DeliveryLocation, error)
}
