package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細（detalle）
// OrderIDはチェックアウトまでnil。Subtotalは追加時点の価格×数量。
type CartLine struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;index" json:"user_id"`
	OrderID   *int64          `gorm:"index" json:"order_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// 未確定（カートに残っている）明細か
func (l CartLine) IsOpen() bool {
	return l.OrderID == nil
}
