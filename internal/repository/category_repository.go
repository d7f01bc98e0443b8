package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CategoryRepository interface {
	//公開中カテゴリ一覧（親も読み込む）
	ListActive(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
}
