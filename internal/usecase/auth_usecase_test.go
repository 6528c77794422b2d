package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
	"oroshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ValidatorMock struct{ mock.Mock }

func (m *ValidatorMock) ValidateLogin(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

type VerifierMock struct{ mock.Mock }

func (m *VerifierMock) Verify(plain string, hashed string) bool {
	args := m.Called(plain, hashed)
	return args.Bool(0)
}

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	args := m.Called(userID, role, tokenVersion, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type authFixture struct {
	uc        *usecase.AuthUsecase
	users     *UserRepoMock
	logs      *ActivityLogRepoMock
	validator *ValidatorMock
	verifier  *VerifierMock
	issuer    *IssuerMock
}

func newAuthFixture() authFixture {
	f := authFixture{
		users:     new(UserRepoMock),
		logs:      new(ActivityLogRepoMock),
		validator: new(ValidatorMock),
		verifier:  new(VerifierMock),
		issuer:    new(IssuerMock),
	}
	f.uc = usecase.NewAuthUsecase(f.users, f.logs, f.validator, f.verifier, f.issuer, fixedClock{now: testNow})
	return f
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	f := newAuthFixture()
	user := model.User{ID: 2, Name: "Juan Pérez", Email: "juan@oroshop.local", PasswordHash: "hash", Role: model.RoleNormal, TokenVersion: 3}

	f.validator.On("ValidateLogin", mock.Anything, "Juan@oroshop.local", "juan123").Return(nil)
	f.users.On("FindByEmail", mock.Anything, "juan@oroshop.local").Return(user, nil)
	f.verifier.On("Verify", "juan123", "hash").Return(true)
	f.issuer.On("Issue", int64(2), model.RoleNormal, 3, testNow).Return("tok", testNow.Add(15*time.Minute), nil)
	f.logs.On("Create", mock.Anything, mock.MatchedBy(func(l model.ActivityLog) bool {
		return l.UserID == 2 && l.Action == model.ActivityLogin
	})).Return(nil)

	out, err := f.uc.Login(context.Background(), usecase.LoginInput{Email: "Juan@oroshop.local", Password: "juan123"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token.AccessToken)
	assert.Equal(t, 900, out.Token.ExpiresIn)
	assert.Equal(t, 3, out.Token.TokenVersion)
	assert.Equal(t, "normal", out.User.Role)

	f.logs.AssertExpectations(t)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	f := newAuthFixture()
	f.validator.On("ValidateLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.users.On("FindByEmail", mock.Anything, "nobody@oroshop.local").Return(model.User{}, repo.ErrNotFound)

	_, err := f.uc.Login(context.Background(), usecase.LoginInput{Email: "nobody@oroshop.local", Password: "x"})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.validator.On("ValidateLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.users.On("FindByEmail", mock.Anything, "juan@oroshop.local").Return(model.User{ID: 2, PasswordHash: "hash"}, nil)
	f.verifier.On("Verify", "bad", "hash").Return(false)

	_, err := f.uc.Login(context.Background(), usecase.LoginInput{Email: "juan@oroshop.local", Password: "bad"})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	f.issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_ValidationError(t *testing.T) {
	f := newAuthFixture()
	f.validator.On("ValidateLogin", mock.Anything, "", "").Return(usecase.ErrValidation)

	_, err := f.uc.Login(context.Background(), usecase.LoginInput{})
	assert.ErrorIs(t, err, usecase.ErrValidation)
	f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_ActivityLogFailureIgnored(t *testing.T) {
	f := newAuthFixture()
	f.validator.On("ValidateLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.users.On("FindByEmail", mock.Anything, "a@b.co").Return(model.User{ID: 1, PasswordHash: "h", Role: model.RoleAdmin}, nil)
	f.verifier.On("Verify", "pw", "h").Return(true)
	f.issuer.On("Issue", int64(1), model.RoleAdmin, 0, testNow).Return("tok", testNow.Add(time.Minute), nil)
	f.logs.On("Create", mock.Anything, mock.Anything).Return(errors.New("locked"))

	out, err := f.uc.Login(context.Background(), usecase.LoginInput{Email: "a@b.co", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Role)
}

func TestAuthUsecase_Logout(t *testing.T) {
	f := newAuthFixture()

	assert.ErrorIs(t, f.uc.Logout(context.Background(), 0), usecase.ErrUnauthorized)

	f.users.On("IncrementTokenVersion", mock.Anything, int64(2)).Return(nil)
	f.logs.On("Create", mock.Anything, mock.MatchedBy(func(l model.ActivityLog) bool {
		return l.Action == model.ActivityLogout
	})).Return(nil)
	require.NoError(t, f.uc.Logout(context.Background(), 2))

	f.users.On("IncrementTokenVersion", mock.Anything, int64(9)).Return(repo.ErrNotFound)
	assert.ErrorIs(t, f.uc.Logout(context.Background(), 9), usecase.ErrUnauthorized)
}

func TestAuthUsecase_ForceLogout(t *testing.T) {
	f := newAuthFixture()

	_, err := f.uc.ForceLogout(context.Background(), 1, 0)
	assert.ErrorIs(t, err, usecase.ErrValidation)

	f.users.On("IncrementTokenVersion", mock.Anything, int64(2)).Return(nil)
	f.users.On("FindByID", mock.Anything, int64(2)).Return(model.User{ID: 2, TokenVersion: 4}, nil)
	f.logs.On("Create", mock.Anything, model.ActivityLog{
		UserID:    1,
		Action:    model.ActivityForceLogout,
		Detail:    "target_user_id=2",
		CreatedAt: testNow,
	}).Return(nil)

	out, err := f.uc.ForceLogout(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.UserID)
	assert.Equal(t, 4, out.NewTokenVersion)
	f.logs.AssertExpectations(t)

	f.users.On("IncrementTokenVersion", mock.Anything, int64(9)).Return(repo.ErrNotFound)
	_, err = f.uc.ForceLogout(context.Background(), 1, 9)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
