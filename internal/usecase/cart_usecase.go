package usecase

import (
	"context"
	"errors"
	"fmt"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"github.com/shopspring/decimal"
)

// 1明細の数量の上限
const maxLineQuantity = 10000

// numeric(12,2)に入る最大金額
var maxAmount = decimal.RequireFromString("9999999999.99")

// CartUsecase は /cart の業務ロジックです。
// カートは order_id が未設定の明細の集まり。
type CartUsecase struct {
	tx        repo.TransactionManager
	products  repo.ProductRepository
	cartLines repo.CartLineRepository
	clock     Clock
}

func NewCartUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	cartLines repo.CartLineRepository,
	clock Clock,
) *CartUsecase {
	return &CartUsecase{
		tx:        tx,
		products:  products,
		cartLines: cartLines,
		clock:     clock,
	}
}

type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

// AddLine は明細を1件追加する。同じ商品でもまとめない。
// 小計は追加時点の価格×数量。
func (u *CartUsecase) AddLine(ctx context.Context, userID int64, in AddCartInput) (model.CartLine, error) {
	if userID <= 0 {
		return model.CartLine{}, ErrUnauthorized
	}
	if in.ProductID <= 0 {
		return model.CartLine{}, invalid("invalid product_id")
	}
	if in.Quantity < 1 || in.Quantity > maxLineQuantity {
		return model.CartLine{}, invalid("invalid quantity")
	}

	var created model.CartLine
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, in.ProductID)
		}
		if err != nil {
			return persistence("find product", err)
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(in.Quantity))
		if subtotal.GreaterThan(maxAmount) {
			return invalid("subtotal too large")
		}

		now := u.clock.Now()
		created, err = r.CartLines().Append(ctx, model.CartLine{
			UserID:    userID,
			ProductID: p.ID,
			Quantity:  in.Quantity,
			Subtotal:  subtotal,
			CreatedAt: now,
		})
		if err != nil {
			return persistence("append cart line", err)
		}

		if err := r.ActivityLogs().Create(ctx, model.ActivityLog{
			UserID:    userID,
			Action:    model.ActivityAddToCart,
			Detail:    fmt.Sprintf("product_id=%d quantity=%d", p.ID, in.Quantity),
			CreatedAt: now,
		}); err != nil {
			return persistence("write activity log", err)
		}
		return nil
	})
	if err != nil {
		return model.CartLine{}, err
	}
	return created, nil
}

// ListLines はカートの中身を追加順で返す（商品名付き）。
func (u *CartUsecase) ListLines(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, ErrUnauthorized
	}

	lines, err := u.cartLines.ListOpenByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, persistence("list cart lines", err)
	}

	names, err := u.productNames(ctx)
	if err != nil {
		return CartResponse{}, err
	}

	out := CartResponse{
		Items: make([]CartItemResponse, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, l := range lines {
		out.Items = append(out.Items, CartItemResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Name:      names[l.ProductID],
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal,
		})
		out.Total = out.Total.Add(l.Subtotal)
	}
	return out, nil
}

// Clear はカートを空にする。削除した件数を返す。
func (u *CartUsecase) Clear(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, ErrUnauthorized
	}

	var deleted int64
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		n, err := r.CartLines().DeleteOpenByUserID(ctx, userID)
		if err != nil {
			return persistence("delete cart lines", err)
		}
		deleted = n

		if err := r.ActivityLogs().Create(ctx, model.ActivityLog{
			UserID:    userID,
			Action:    model.ActivityClearCart,
			Detail:    fmt.Sprintf("lines=%d", n),
			CreatedAt: u.clock.Now(),
		}); err != nil {
			return persistence("write activity log", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (u *CartUsecase) productNames(ctx context.Context) (map[int64]string, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, persistence("list products", err)
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}
