package validator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"oroshop/internal/domain/model"
	"oroshop/internal/usecase"
)

const (
	minPasswordLen = 6
	maxNameLen     = 255
)

type userValidator struct{}

func NewUserValidator() usecase.UserValidator {
	return &userValidator{}
}

// 管理者が作るユーザーの入力を検証
func (v *userValidator) ValidateCreateUser(ctx context.Context, in usecase.CreateUserInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", usecase.ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("%w: name too long", usecase.ErrValidation)
	}

	if !isEmailLike(strings.TrimSpace(in.Email)) {
		return fmt.Errorf("%w: invalid email", usecase.ErrValidation)
	}

	if len(in.Password) < minPasswordLen {
		return fmt.Errorf("%w: password too short", usecase.ErrValidation)
	}
	if len(in.Password) > maxPasswordLen {
		return fmt.Errorf("%w: password too long", usecase.ErrValidation)
	}

	switch in.Role {
	case model.RoleAdmin, model.RoleNormal:
	default:
		return fmt.Errorf("%w: invalid role", usecase.ErrValidation)
	}
	return nil
}
