package repository

import (
	"context"

	"oroshop/internal/domain/model"
)

// カート明細の窓口。
// order_idがNULLの明細がそのユーザーのカート。
type CartLineRepository interface {
	// 明細を1件追加する（IDはDBの連番）
	Append(ctx context.Context, line model.CartLine) (model.CartLine, error)
	// ユーザーの未確定明細を追加順で返す
	ListOpenByUserID(ctx context.Context, userID int64) ([]model.CartLine, error)
	DeleteOpenByUserID(ctx context.Context, userID int64) (int64, error)
	// 未確定明細に注文IDを付ける（カートを空にする）
	AttachToOrder(ctx context.Context, userID int64, orderID int64) (int64, error)
	// 注文済みの全明細（集計用）
	ListCheckedOut(ctx context.Context) ([]model.CartLine, error)
}
