package repository

import (
	"context"

	"oroshop/internal/domain/model"
)

// 操作ログの絞り込み条件。
type ActivityLogFilter struct {
	UserID *int64
	Action *model.ActivityAction
	Limit  int
}

// 操作ログの保存・一覧取得の約束。
type ActivityLogRepository interface {
	//操作ログを1件保存
	Create(ctx context.Context, log model.ActivityLog) error

	//操作ログを条件で一覧取得（新しい順）。
	List(ctx context.Context, filter ActivityLogFilter) ([]model.ActivityLog, error)
}
