package usecase_test

import (
	"context"
	"time"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	products     repo.ProductRepository
	cartLines    repo.CartLineRepository
	orders       repo.OrderRepository
	payments     repo.PaymentRepository
	activityLogs repo.ActivityLogRepository
}

func (r *TxReposMock) Products() repo.ProductRepository         { return r.products }
func (r *TxReposMock) CartLines() repo.CartLineRepository       { return r.cartLines }
func (r *TxReposMock) Orders() repo.OrderRepository             { return r.orders }
func (r *TxReposMock) Payments() repo.PaymentRepository         { return r.payments }
func (r *TxReposMock) ActivityLogs() repo.ActivityLogRepository { return r.activityLogs }

// =====================
// Repository mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) FindOrCreate(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}

type CartLineRepoMock struct{ mock.Mock }

func (m *CartLineRepoMock) Append(ctx context.Context, line model.CartLine) (model.CartLine, error) {
	args := m.Called(ctx, line)
	out, _ := args.Get(0).(model.CartLine)
	return out, args.Error(1)
}

func (m *CartLineRepoMock) ListOpenByUserID(ctx context.Context, userID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, userID)
	ls, _ := args.Get(0).([]model.CartLine)
	return ls, args.Error(1)
}

func (m *CartLineRepoMock) DeleteOpenByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartLineRepoMock) AttachToOrder(ctx context.Context, userID int64, orderID int64) (int64, error) {
	args := m.Called(ctx, userID, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartLineRepoMock) ListCheckedOut(ctx context.Context) ([]model.CartLine, error) {
	args := m.Called(ctx)
	ls, _ := args.Get(0).([]model.CartLine)
	return ls, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	out, _ := args.Get(0).(model.Order)
	return out, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Payment)
	return out, args.Error(1)
}

func (m *PaymentRepoMock) FindByOrderID(ctx context.Context, orderID int64) (model.Payment, error) {
	args := m.Called(ctx, orderID)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) List(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Payment)
	return ps, args.Error(1)
}

type ActivityLogRepoMock struct{ mock.Mock }

func (m *ActivityLogRepoMock) Create(ctx context.Context, log model.ActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *ActivityLogRepoMock) List(ctx context.Context, f repo.ActivityLogFilter) ([]model.ActivityLog, error) {
	args := m.Called(ctx, f)
	ls, _ := args.Get(0).([]model.ActivityLog)
	return ls, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *UserRepoMock) FindOrCreate(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) IncrementTokenVersion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repo.ProductRepository     = (*ProductRepoMock)(nil)
	_ repo.CategoryRepository    = (*CategoryRepoMock)(nil)
	_ repo.CartLineRepository    = (*CartLineRepoMock)(nil)
	_ repo.OrderRepository       = (*OrderRepoMock)(nil)
	_ repo.PaymentRepository     = (*PaymentRepoMock)(nil)
	_ repo.ActivityLogRepository = (*ActivityLogRepoMock)(nil)
	_ repo.UserRepository        = (*UserRepoMock)(nil)
)

// =====================
// usecase部品
// =====================

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedIDGen struct{ id string }

func (g fixedIDGen) NewID() string { return g.id }

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, key string, ev model.OrderEvent) error {
	args := m.Called(ctx, key, ev)
	return args.Error(0)
}

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
