package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"github.com/rs/zerolog"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (token string, expiresAt time.Time, err error)
}

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateLogin(ctx context.Context, email string, password string) error
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type UserDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

type JwtAccessToken struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenVersion int    `json:"token_version"`
}

type ForceLogoutOutput struct {
	UserID          int64 `json:"user_id"`
	NewTokenVersion int   `json:"new_token_version"`
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User  UserDTO        `json:"user"`
	Token JwtAccessToken `json:"token"`
}

type AuthUsecase struct {
	users     repo.UserRepository
	logs      repo.ActivityLogRepository
	validator AuthValidator
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	clock     Clock
}

func NewAuthUsecase(
	users repo.UserRepository,
	logs repo.ActivityLogRepository,
	validator AuthValidator,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		logs:      logs,
		validator: validator,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return LoginOutput{}, err
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))

	//ユーザー取得（存在しない場合も同じエラー）
	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return LoginOutput{}, ErrUnauthorized
	}
	if err != nil {
		return LoginOutput{}, persistence("find user", err)
	}

	//パスワード照合
	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return LoginOutput{}, ErrUnauthorized
	}

	now := u.clock.Now()
	token, exp, err := u.issuer.Issue(user.ID, user.Role, user.TokenVersion, now)
	if err != nil {
		return LoginOutput{}, err
	}

	u.record(ctx, user.ID, model.ActivityLogin, now)

	return LoginOutput{
		User: toUserDTO(user),
		Token: JwtAccessToken{
			AccessToken:  token,
			ExpiresIn:    int(exp.Sub(now).Seconds()),
			TokenVersion: user.TokenVersion,
		},
	}, nil
}

// token_versionを上げて発行済みのトークンを無効にする
func (u *AuthUsecase) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	err := u.users.IncrementTokenVersion(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUnauthorized
	}
	if err != nil {
		return persistence("increment token version", err)
	}

	u.record(ctx, userID, model.ActivityLogout, u.clock.Now())
	return nil
}

// 管理者が他ユーザーのトークンを無効にする
func (u *AuthUsecase) ForceLogout(ctx context.Context, adminID int64, targetUserID int64) (ForceLogoutOutput, error) {
	if adminID <= 0 {
		return ForceLogoutOutput{}, ErrUnauthorized
	}
	if targetUserID <= 0 {
		return ForceLogoutOutput{}, invalid("invalid user_id")
	}

	err := u.users.IncrementTokenVersion(ctx, targetUserID)
	if errors.Is(err, repo.ErrNotFound) {
		return ForceLogoutOutput{}, ErrNotFound
	}
	if err != nil {
		return ForceLogoutOutput{}, persistence("increment token version", err)
	}

	user, err := u.users.FindByID(ctx, targetUserID)
	if err != nil {
		return ForceLogoutOutput{}, persistence("find user", err)
	}

	if err := u.logs.Create(ctx, model.ActivityLog{
		UserID:    adminID,
		Action:    model.ActivityForceLogout,
		Detail:    fmt.Sprintf("target_user_id=%d", targetUserID),
		CreatedAt: u.clock.Now(),
	}); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("user_id", adminID).Msg("write activity log failed")
	}

	return ForceLogoutOutput{UserID: user.ID, NewTokenVersion: user.TokenVersion}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, ErrUnauthorized
	}
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserDTO{}, ErrUnauthorized
	}
	if err != nil {
		return UserDTO{}, persistence("find user", err)
	}
	return toUserDTO(user), nil
}

// ログイン/ログアウトの記録。失敗しても認証自体は成功扱い。
func (u *AuthUsecase) record(ctx context.Context, userID int64, action model.ActivityAction, at time.Time) {
	if err := u.logs.Create(ctx, model.ActivityLog{UserID: userID, Action: action, CreatedAt: at}); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("user_id", userID).Str("action", string(action)).Msg("write activity log failed")
	}
}

// model.UserをAPI返却用DTOに変換。
func toUserDTO(u model.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		TokenVersion: u.TokenVersion,
	}
}
