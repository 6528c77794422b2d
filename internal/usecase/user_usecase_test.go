package usecase_test

import (
	"context"
	"testing"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
	"oroshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UserValidatorMock struct{ mock.Mock }

func (m *UserValidatorMock) ValidateCreateUser(ctx context.Context, in usecase.CreateUserInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

type HasherMock struct{ mock.Mock }

func (m *HasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

type userFixture struct {
	uc        *usecase.UserUsecase
	users     *UserRepoMock
	logs      *ActivityLogRepoMock
	validator *UserValidatorMock
	hasher    *HasherMock
}

func newUserFixture() userFixture {
	f := userFixture{
		users:     new(UserRepoMock),
		logs:      new(ActivityLogRepoMock),
		validator: new(UserValidatorMock),
		hasher:    new(HasherMock),
	}
	f.uc = usecase.NewUserUsecase(f.users, f.logs, f.validator, f.hasher, fixedClock{now: testNow})
	return f
}

func TestUserUsecase_Create(t *testing.T) {
	f := newUserFixture()
	in := usecase.CreateUserInput{Name: "Carlos López", Email: " Carlos@OroShop.local", Password: "carlos123"}

	// roleが空ならnormal
	withRole := in
	withRole.Role = model.RoleNormal
	f.validator.On("ValidateCreateUser", mock.Anything, withRole).Return(nil)
	f.hasher.On("Hash", "carlos123").Return("hashed", nil)
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "carlos@oroshop.local" && u.PasswordHash == "hashed" && u.Role == model.RoleNormal
	})).Return(model.User{ID: 5, Name: "Carlos López", Email: "carlos@oroshop.local", Role: model.RoleNormal}, nil).Once()
	f.logs.On("Create", mock.Anything, mock.MatchedBy(func(l model.ActivityLog) bool {
		return l.UserID == 1 && l.Action == model.ActivityCreateUser && l.Detail == "user_id=5"
	})).Return(nil)

	out, err := f.uc.Create(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, "carlos@oroshop.local", out.Email)
	assert.Equal(t, "normal", out.Role)
	f.logs.AssertExpectations(t)

	// 同じemailは409
	f.users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrDuplicate).Once()
	_, err = f.uc.Create(context.Background(), 1, in)
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestUserUsecase_Create_ValidationStopsEarly(t *testing.T) {
	f := newUserFixture()
	f.validator.On("ValidateCreateUser", mock.Anything, mock.Anything).Return(usecase.ErrValidation)

	_, err := f.uc.Create(context.Background(), 1, usecase.CreateUserInput{Email: "x"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	_, err = f.uc.Create(context.Background(), 0, usecase.CreateUserInput{})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestUserUsecase_List(t *testing.T) {
	f := newUserFixture()
	f.users.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Name: "Administrador", Email: "admin@oroshop.local", PasswordHash: "h", Role: model.RoleAdmin},
		{ID: 2, Name: "Juan Pérez", Email: "juan@oroshop.local", PasswordHash: "h", Role: model.RoleNormal},
	}, nil)

	out, err := f.uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "admin", out[0].Role)
	assert.Equal(t, "juan@oroshop.local", out[1].Email)
}
