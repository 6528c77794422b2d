package repository

import (
	"context"

	"oroshop/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//新しい順
	List(ctx context.Context) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (model.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) (model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
}
