package usecase

import (
	"context"
	"errors"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
)

type AdminOrderUsecase struct {
	orders   repo.OrderRepository
	payments repo.PaymentRepository
}

func NewAdminOrderUsecase(orders repo.OrderRepository, payments repo.PaymentRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orders: orders, payments: payments}
}

// 支払いが無い注文はPaymentがnil
type AdminOrderOutput struct {
	Order   model.Order    `json:"order"`
	Payment *model.Payment `json:"payment"`
}

// 注文一覧（新しい順）と支払い
func (u *AdminOrderUsecase) List(ctx context.Context) ([]AdminOrderOutput, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return []AdminOrderOutput{}, persistence("list orders", err)
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return []AdminOrderOutput{}, persistence("list payments", err)
	}

	byOrder := make(map[int64]model.Payment, len(payments))
	for _, p := range payments {
		byOrder[p.OrderID] = p
	}

	outs := make([]AdminOrderOutput, 0, len(orders))
	for _, o := range orders {
		out := AdminOrderOutput{Order: o}
		if p, ok := byOrder[o.ID]; ok {
			out.Payment = &p
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// 注文1件と支払い
func (u *AdminOrderUsecase) Get(ctx context.Context, orderID int64) (AdminOrderOutput, error) {
	if orderID <= 0 {
		return AdminOrderOutput{}, invalid("invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminOrderOutput{}, ErrNotFound
	}
	if err != nil {
		return AdminOrderOutput{}, persistence("find order", err)
	}

	out := AdminOrderOutput{Order: o}
	p, err := u.payments.FindByOrderID(ctx, orderID)
	switch {
	case err == nil:
		out.Payment = &p
	case errors.Is(err, repo.ErrNotFound):
	default:
		return AdminOrderOutput{}, persistence("find payment", err)
	}
	return out, nil
}
