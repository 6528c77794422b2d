package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
)

// 支払い。1注文につき1件。
type Payment struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;uniqueIndex" json:"order_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method    string          `gorm:"type:varchar(50);not null" json:"method"`
	Reference string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"reference"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}
