package repository

import (
	"context"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"gorm.io/gorm"
)

type ActivityLogGormRepository struct {
	db *gorm.DB
}

func NewActivityLogGormRepository(db *gorm.DB) *ActivityLogGormRepository {
	return &ActivityLogGormRepository{db: db}
}

// 操作ログを1件保存
func (r *ActivityLogGormRepository) Create(ctx context.Context, log model.ActivityLog) error {
	log.ID = 0
	return r.db.WithContext(ctx).Create(&log).Error
}

// 条件付きで新しい順に返す
func (r *ActivityLogGormRepository) List(ctx context.Context, f repo.ActivityLogFilter) ([]model.ActivityLog, error) {
	q := r.db.WithContext(ctx).Model(&model.ActivityLog{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Action != nil {
		q = q.Where("action = ?", *f.Action)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var logs []model.ActivityLog
	if err := q.Order("id desc").Find(&logs).Error; err != nil {
		return []model.ActivityLog{}, err
	}
	return logs, nil
}
