package usecase

import (
	"context"
	"errors"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
)

// 商品カタログ（読み取りのみ）
type CatalogUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
}

// DI
func NewCatalogUsecase(products repo.ProductRepository, categories repo.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products, categories: categories}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, persistence("list products", err)
	}
	return products, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, invalid("invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, persistence("find product", err)
	}
	return p, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return []model.Category{}, persistence("list categories", err)
	}
	return categories, nil
}
