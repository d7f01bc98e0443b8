package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository, categoryRepo repo.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GET /products の入力DTO
type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Category string
	Featured *bool
	Sort     string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && in.MinPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && in.MaxPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	q := repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        in.Q,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Featured: in.Featured,
		Sort:     in.Sort,
	}

	//カテゴリ指定はslugで受けてIDに変換
	if in.Category != "" {
		c, err := u.categoryRepo.FindBySlug(ctx, in.Category)
		if errors.Is(err, repo.ErrNotFound) {
			return ProductListOutput{}, NewHTTPError(http.StatusNotFound, "Category not found")
		}
		if err != nil {
			return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		q.CategoryID = &c.ID
	}

	items, total, err := u.productRepo.ListActive(ctx, q)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	if slug == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListActive(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

type CategoryDetailOutput struct {
	model.Category
	Products []model.Product `json:"products"`
}

// カテゴリ詳細。公開中の商品も一緒に返す。
func (u *CatalogUsecase) GetCategoryBySlug(ctx context.Context, slug string) (CategoryDetailOutput, error) {
	if slug == "" {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	c, err := u.categoryRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品は全件返す。ページを繰り越して集める。
	products := make([]model.Product, 0)
	for page := 1; ; page++ {
		batch, total, err := u.productRepo.ListActive(ctx, repo.ProductListQuery{
			Page:       page,
			Limit:      100,
			CategoryID: &c.ID,
		})
		if err != nil {
			return CategoryDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		products = append(products, batch...)
		if len(batch) == 0 || int64(len(products)) >= total {
			break
		}
	}

	return CategoryDetailOutput{Category: c, Products: products}, nil
}
