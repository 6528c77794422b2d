package repository

import (
	"context"
	"errors"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品をID順で返す。
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// 同名カテゴリがあればそれを返し、無ければ作る。
func (r *CategoryGormRepository) FindOrCreate(ctx context.Context, c model.Category) (model.Category, error) {
	var found model.Category
	err := r.db.WithContext(ctx).
		Where(model.Category{Name: c.Name}).
		Attrs(model.Category{Description: c.Description}).
		FirstOrCreate(&found).Error
	if err != nil {
		return model.Category{}, err
	}
	return found, nil
}

func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}
