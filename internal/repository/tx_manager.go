package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	CartLines() CartLineRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	ActivityLogs() ActivityLogRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// 書き込みは1本ずつ直列に実行される。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
