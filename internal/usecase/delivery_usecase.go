package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type DeliveryUsecase struct {
	locationRepo repo.DeliveryLocationRepository
}

// DI
func NewDeliveryUsecase(locationRepo repo.DeliveryLocationRepository) *DeliveryUsecase {
	return &DeliveryUsecase{locationRepo: locationRepo}
}

func (u *DeliveryUsecase) ListLocations(ctx context.Context) ([]model.DeliveryLocation, error) {
	locations, err := u.locationRepo.ListActive(ctx)
	if err != nil {
		return []model.DeliveryLocation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return locations, nil
}

type DeliveryFeeOutput struct {
	Fee      decimal.Decimal `json:"fee"`
	Location string          `json:"location,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// 配送料の表示用。見つからない/非公開でも404にはせず fee=0 を返す。
func (u *DeliveryUsecase) CalculateFee(ctx context.Context, locationID int64) (DeliveryFeeOutput, error) {
	loc, err := u.locationRepo.FindByID(ctx, locationID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && !loc.IsActive) {
		return DeliveryFeeOutput{
			Fee:     decimal.Zero,
			Message: "Location not found or inactive",
		}, nil
	}
	if err != nil {
		return DeliveryFeeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	fee := decimal.Zero
	if loc.DeliveryFee != nil {
		fee = *loc.DeliveryFee
	}
	return DeliveryFeeOutput{Fee: fee, Location: loc.Name}, nil
}
