package repository

import (
	"context"
	"errors"
	"strings"

	"oroshop/internal/domain/model"
	domainrepo "oroshop/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// emailは小文字で保存・検索する
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 新規作成。emailが既にあればErrDuplicate。
func (r *userGormRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	user.ID = 0
	user.Email = normalizeEmail(user.Email)

	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", user.Email).Count(&n).Error; err != nil {
		return model.User{}, err
	}
	if n > 0 {
		return model.User{}, domainrepo.ErrDuplicate
	}

	err := r.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.User{}, domainrepo.ErrDuplicate
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// emailが同じユーザーがいればそれを返し、いなければ作成
func (r *userGormRepository) FindOrCreate(ctx context.Context, user model.User) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where(model.User{Email: normalizeEmail(user.Email)}).
		Attrs(model.User{
			Name:         user.Name,
			PasswordHash: user.PasswordHash,
			Role:         user.Role,
		}).
		FirstOrCreate(&u).Error
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// token_versionを+1 します。
func (r *userGormRepository) IncrementTokenVersion(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + ?", 1))

	if res.Error != nil {
		return res.Error
	}

	// 0件更新は「対象がない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *userGormRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	return users, nil
}

func (r *userGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
