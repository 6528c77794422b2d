package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const EventOrderPaid = "order.paid"

// チェックアウト完了後に外部へ流すイベント
type OrderEvent struct {
	Type       string          `json:"type"`
	OrderID    int64           `json:"order_id"`
	PaymentID  int64           `json:"payment_id"`
	UserID     int64           `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	OccurredAt time.Time       `json:"occurred_at"`
}
