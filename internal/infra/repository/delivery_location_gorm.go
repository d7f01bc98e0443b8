package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type DeliveryLocationGormRepository struct {
	db *gorm.DB
}

// DI
func NewDeliveryLocationGormRepository(db *gorm.DB) *DeliveryLocationGormRepository {
	return &DeliveryLocationGormRepository{db: db}
}

func (r *DeliveryLocationGormRepository) ListActive(ctx context.Context) ([]model.DeliveryLocation, error) {
	var locations []model.DeliveryLocation
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&locations).Error
	if err != nil {
		return []model.DeliveryLocation{}, err
	}
	return locations, nil
}

func (r *DeliveryLocationGormRepository) FindByID(ctx context.Context, id int64) (model.DeliveryLocation, error) {
	var l model.DeliveryLocation
	err := r.db.WithContext(ctx).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DeliveryLocation{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DeliveryLocation{}, err
	}
	return l, nil
}
