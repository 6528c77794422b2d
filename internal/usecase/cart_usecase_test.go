package usecase_test

import (
	"context"
	"errors"
	"testing"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
	"oroshop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (*usecase.CartUsecase, *TxManagerMock, *ProductRepoMock, *CartLineRepoMock, *ActivityLogRepoMock) {
	products := new(ProductRepoMock)
	lines := new(CartLineRepoMock)
	logs := new(ActivityLogRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{products: products, cartLines: lines, activityLogs: logs}

	uc := usecase.NewCartUsecase(tx, products, lines, fixedClock{now: testNow})
	return uc, tx, products, lines, logs
}

func TestCartUsecase_AddLine_Unauthorized(t *testing.T) {
	uc, _, _, _, _ := newCartFixture()

	_, err := uc.AddLine(context.Background(), 0, usecase.AddCartInput{ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestCartUsecase_AddLine_InvalidQuantity(t *testing.T) {
	uc, tx, _, _, _ := newCartFixture()

	for _, q := range []int64{0, -3, 10001} {
		_, err := uc.AddLine(context.Background(), 1, usecase.AddCartInput{ProductID: 1, Quantity: q})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	}
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestCartUsecase_AddLine_SubtotalOverflowIsValidation(t *testing.T) {
	uc, tx, products, lines, _ := newCartFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Price: decimal.RequireFromString("9999999.99")}, nil)

	_, err := uc.AddLine(context.Background(), 1, usecase.AddCartInput{ProductID: 1, Quantity: 10000})
	assert.ErrorIs(t, err, usecase.ErrValidation)
	lines.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCartUsecase_AddLine_ProductNotFound(t *testing.T) {
	uc, tx, products, lines, _ := newCartFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddLine(context.Background(), 1, usecase.AddCartInput{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
	lines.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCartUsecase_AddLine_SubtotalIsPriceTimesQuantity(t *testing.T) {
	uc, tx, products, lines, logs := newCartFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Laptop Oro", Price: decimal.RequireFromString("10.00")}, nil)

	lines.On("Append", mock.Anything, mock.MatchedBy(func(l model.CartLine) bool {
		return l.UserID == 7 && l.ProductID == 1 && l.Quantity == 3 &&
			l.Subtotal.Equal(decimal.RequireFromString("30.00")) && l.OrderID == nil
	})).Return(model.CartLine{ID: 1, UserID: 7, ProductID: 1, Quantity: 3, Subtotal: decimal.RequireFromString("30.00")}, nil)

	logs.On("Create", mock.Anything, mock.MatchedBy(func(l model.ActivityLog) bool {
		return l.UserID == 7 && l.Action == model.ActivityAddToCart
	})).Return(nil)

	line, err := uc.AddLine(context.Background(), 7, usecase.AddCartInput{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), line.ID)
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("30")))

	tx.AssertExpectations(t)
	lines.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestCartUsecase_AddLine_StoreFailure(t *testing.T) {
	uc, tx, products, lines, _ := newCartFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: decimal.NewFromInt(5)}, nil)
	lines.On("Append", mock.Anything, mock.Anything).Return(model.CartLine{}, errors.New("disk full"))

	_, err := uc.AddLine(context.Background(), 1, usecase.AddCartInput{ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, usecase.ErrPersistence)
}

func TestCartUsecase_ListLines_InInsertionOrderWithNames(t *testing.T) {
	uc, _, products, lines, _ := newCartFixture()

	lines.On("ListOpenByUserID", mock.Anything, int64(7)).Return([]model.CartLine{
		{ID: 1, ProductID: 2, Quantity: 1, Subtotal: decimal.RequireFromString("450.75")},
		{ID: 2, ProductID: 1, Quantity: 2, Subtotal: decimal.RequireFromString("2401.00")},
		{ID: 3, ProductID: 2, Quantity: 1, Subtotal: decimal.RequireFromString("450.75")},
	}, nil)
	products.On("List", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Laptop Oro"},
		{ID: 2, Name: "Tablet Plata"},
	}, nil)

	out, err := uc.ListLines(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	assert.Equal(t, []int64{1, 2, 3}, []int64{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID})
	assert.Equal(t, "Tablet Plata", out.Items[0].Name)
	assert.Equal(t, "Laptop Oro", out.Items[1].Name)
	assert.Equal(t, "3302.5", out.Total.String())
}

func TestCartUsecase_ListLines_Empty(t *testing.T) {
	uc, _, products, lines, _ := newCartFixture()
	lines.On("ListOpenByUserID", mock.Anything, int64(7)).Return([]model.CartLine{}, nil)
	products.On("List", mock.Anything).Return([]model.Product{}, nil)

	out, err := uc.ListLines(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Total.IsZero())
}

func TestCartUsecase_Clear(t *testing.T) {
	uc, tx, _, lines, logs := newCartFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)
	lines.On("DeleteOpenByUserID", mock.Anything, int64(7)).Return(int64(2), nil)
	logs.On("Create", mock.Anything, mock.MatchedBy(func(l model.ActivityLog) bool {
		return l.Action == model.ActivityClearCart && l.Detail == "lines=2"
	})).Return(nil)

	n, err := uc.Clear(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	logs.AssertExpectations(t)
}
