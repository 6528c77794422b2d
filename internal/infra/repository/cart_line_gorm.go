package repository

import (
	"context"

	"oroshop/internal/domain/model"

	"gorm.io/gorm"
)

type CartLineGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartLineGormRepository(db *gorm.DB) *CartLineGormRepository {
	return &CartLineGormRepository{db: db}
}

// 明細を追加。IDはDBが採番する。
func (r *CartLineGormRepository) Append(ctx context.Context, line model.CartLine) (model.CartLine, error) {
	line.ID = 0
	line.OrderID = nil
	if err := r.db.WithContext(ctx).Create(&line).Error; err != nil {
		return model.CartLine{}, err
	}
	return line, nil
}

// order_idがNULLの明細を追加順で返す
func (r *CartLineGormRepository) ListOpenByUserID(ctx context.Context, userID int64) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND order_id IS NULL", userID).
		Order("id asc").
		Find(&lines).Error
	if err != nil {
		return []model.CartLine{}, err
	}
	return lines, nil
}

// カートを空にする（削除件数を返す）
func (r *CartLineGormRepository) DeleteOpenByUserID(ctx context.Context, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND order_id IS NULL", userID).
		Delete(&model.CartLine{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// 未確定明細を注文に紐づける
func (r *CartLineGormRepository) AttachToOrder(ctx context.Context, userID int64, orderID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.CartLine{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Update("order_id", orderID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// 集計用：注文済み明細をすべて返す
func (r *CartLineGormRepository) ListCheckedOut(ctx context.Context) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := r.db.WithContext(ctx).
		Where("order_id IS NOT NULL").
		Order("id asc").
		Find(&lines).Error
	if err != nil {
		return []model.CartLine{}, err
	}
	return lines, nil
}
