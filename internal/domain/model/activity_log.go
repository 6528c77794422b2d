package model

import "time"

// ユーザー操作の種類
type ActivityAction string

const (
	ActivityLogin     ActivityAction = "login"
	ActivityLogout    ActivityAction = "logout"
	ActivityAddToCart ActivityAction = "add_to_cart"
	ActivityClearCart ActivityAction = "clear_cart"
	ActivityCheckout  ActivityAction = "checkout"
	// 管理者の操作
	ActivityForceLogout ActivityAction = "force_logout"
	ActivityCreateUser  ActivityAction = "create_user"
)

// 操作ログ（registros）。
// 「誰が」「何を」「いつ」したかを残す。
type ActivityLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//操作したユーザーのID。
	UserID int64 `gorm:"not null;index" json:"user_id"`

	Action ActivityAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//補足（注文IDなど）。
	Detail string `gorm:"type:text" json:"detail"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
