package repository

import (
	"context"
	"errors"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	order.ID = 0
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 管理画面用：新しい順
func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var items []model.Order
	if err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Payment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]model.Payment, error) {
	var items []model.Payment
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Payment{}, err
	}
	return items, nil
}
