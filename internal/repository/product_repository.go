package repository

import (
	"context"
	"errors"

	"oroshop/internal/domain/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
}

// カテゴリはシード時にのみ作成する。
type CategoryRepository interface {
	FindOrCreate(ctx context.Context, c model.Category) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}
