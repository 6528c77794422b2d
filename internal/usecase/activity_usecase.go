package usecase

import (
	"context"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// 管理者向けの操作ログ参照
type ActivityUsecase struct {
	logs repo.ActivityLogRepository
}

func NewActivityUsecase(logs repo.ActivityLogRepository) *ActivityUsecase {
	return &ActivityUsecase{logs: logs}
}

func (u *ActivityUsecase) List(ctx context.Context, f repo.ActivityLogFilter) ([]model.ActivityLog, error) {
	if f.UserID != nil && *f.UserID <= 0 {
		return []model.ActivityLog{}, invalid("invalid user_id")
	}
	if f.Limit < 0 || f.Limit > maxActivityLimit {
		return []model.ActivityLog{}, invalid("invalid limit")
	}
	if f.Limit == 0 {
		f.Limit = defaultActivityLimit
	}

	logs, err := u.logs.List(ctx, f)
	if err != nil {
		return []model.ActivityLog{}, persistence("list activity logs", err)
	}
	return logs, nil
}
