package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"github.com/rs/zerolog"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ユーザー作成の入力チェックの約束
type UserValidator interface {
	ValidateCreateUser(ctx context.Context, in CreateUserInput) error
}

// 管理者が作るユーザーの入力
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role // 空ならnormal
}

// 管理者向けのユーザー一覧・作成
type UserUsecase struct {
	users     repo.UserRepository
	logs      repo.ActivityLogRepository
	validator UserValidator
	hasher    PasswordHasher
	clock     Clock
}

func NewUserUsecase(
	users repo.UserRepository,
	logs repo.ActivityLogRepository,
	validator UserValidator,
	hasher PasswordHasher,
	clock Clock,
) *UserUsecase {
	return &UserUsecase{
		users:     users,
		logs:      logs,
		validator: validator,
		hasher:    hasher,
		clock:     clock,
	}
}

func (u *UserUsecase) List(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return []UserDTO{}, persistence("list users", err)
	}
	out := make([]UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toUserDTO(user))
	}
	return out, nil
}

// Create はユーザーを1件作る。同じemailがあればErrConflict。
func (u *UserUsecase) Create(ctx context.Context, adminID int64, in CreateUserInput) (UserDTO, error) {
	if adminID <= 0 {
		return UserDTO{}, ErrUnauthorized
	}
	if in.Role == "" {
		in.Role = model.RoleNormal
	}
	if err := u.validator.ValidateCreateUser(ctx, in); err != nil {
		return UserDTO{}, err
	}

	//パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserDTO{}, fmt.Errorf("hash password: %w", err)
	}

	now := u.clock.Now()
	created, err := u.users.Create(ctx, model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hashed,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return UserDTO{}, fmt.Errorf("%w: email already exists", ErrConflict)
	}
	if err != nil {
		return UserDTO{}, persistence("create user", err)
	}

	if err := u.logs.Create(ctx, model.ActivityLog{
		UserID:    adminID,
		Action:    model.ActivityCreateUser,
		Detail:    fmt.Sprintf("user_id=%d", created.ID),
		CreatedAt: now,
	}); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("user_id", adminID).Msg("write activity log failed")
	}

	return toUserDTO(created), nil
}
