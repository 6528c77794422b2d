package model

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64       `gorm:"not null;index" json:"user_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time   `gorm:"not null;index" json:"created_at"`
}

// 注文が作られた月（YYYY-MM、UTC）
func (o Order) Month() string {
	return o.CreatedAt.UTC().Format("2006-01")
}
