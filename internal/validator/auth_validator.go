package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"oroshop/internal/usecase"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxPasswordLen = 72 // bcryptが扱える上限

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", usecase.ErrValidation)
	}

	if !isEmailLike(email) {
		return fmt.Errorf("%w: invalid email", usecase.ErrValidation)
	}

	if len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password too long", usecase.ErrValidation)
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailPattern.MatchString(s)
}
