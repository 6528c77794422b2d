package repository

import (
	"context"
	"sync"

	repo "oroshop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products     repo.ProductRepository
	cartLines    repo.CartLineRepository
	orders       repo.OrderRepository
	payments     repo.PaymentRepository
	activityLogs repo.ActivityLogRepository
}

func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) CartLines() repo.CartLineRepository       { return r.cartLines }
func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) Payments() repo.PaymentRepository         { return r.payments }
func (r *txReposGorm) ActivityLogs() repo.ActivityLogRepository { return r.activityLogs }

// 書き込みトランザクションはmuで1本ずつ実行する。
type TxManagerGorm struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:     NewProductGormRepository(tx),
			cartLines:    NewCartLineGormRepository(tx),
			orders:       NewOrderGormRepository(tx),
			payments:     NewPaymentGormRepository(tx),
			activityLogs: NewActivityLogGormRepository(tx),
		}
		return fn(r)
	})
}
