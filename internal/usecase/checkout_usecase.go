package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// payments.methodの列幅
const maxPaymentMethodLen = 50

// CheckoutUsecase はカートを注文と支払いに確定させる。
type CheckoutUsecase struct {
	tx     repo.TransactionManager
	events EventPublisher
	idGen  IDGenerator
	clock  Clock
}

func NewCheckoutUsecase(tx repo.TransactionManager, events EventPublisher, idGen IDGenerator, clock Clock) *CheckoutUsecase {
	if events == nil {
		events = NoopPublisher{}
	}
	return &CheckoutUsecase{tx: tx, events: events, idGen: idGen, clock: clock}
}

type CheckoutOutput struct {
	Order   model.Order   `json:"order"`
	Payment model.Payment `json:"payment"`
}

// Checkout は1トランザクションで
// 注文作成→支払い作成→明細に注文IDを付与→操作ログ を行う。
// 途中で失敗したら何も残らない。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, method string) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, ErrUnauthorized
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return CheckoutOutput{}, invalid("payment method is required")
	}
	if len(method) > maxPaymentMethodLen {
		return CheckoutOutput{}, invalid("payment method too long")
	}

	var out CheckoutOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines, err := r.CartLines().ListOpenByUserID(ctx, userID)
		if err != nil {
			return persistence("list cart lines", err)
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Subtotal)
		}
		if !total.IsPositive() {
			return ErrEmptyCart
		}
		if total.GreaterThan(maxAmount) {
			return invalid("total too large")
		}

		now := u.clock.Now()
		order, err := r.Orders().Create(ctx, model.Order{
			UserID:    userID,
			Status:    model.OrderStatusPaid,
			CreatedAt: now,
		})
		if err != nil {
			return persistence("create order", err)
		}

		payment, err := r.Payments().Create(ctx, model.Payment{
			OrderID:   order.ID,
			Amount:    total,
			Method:    method,
			Reference: u.idGen.NewID(),
			Status:    model.PaymentStatusApproved,
			CreatedAt: now,
		})
		if err != nil {
			return persistence("create payment", err)
		}

		//明細を注文に紐づける（カートは空になる）
		if _, err := r.CartLines().AttachToOrder(ctx, userID, order.ID); err != nil {
			return persistence("attach cart lines", err)
		}

		if err := r.ActivityLogs().Create(ctx, model.ActivityLog{
			UserID:    userID,
			Action:    model.ActivityCheckout,
			Detail:    fmt.Sprintf("order_id=%d amount=%s", order.ID, total.StringFixed(2)),
			CreatedAt: now,
		}); err != nil {
			return persistence("write activity log", err)
		}

		out = CheckoutOutput{Order: order, Payment: payment}
		return nil
	})
	if err != nil {
		return CheckoutOutput{}, err
	}

	// commit後に通知する。失敗しても注文は確定済み。
	ev := model.OrderEvent{
		Type:       model.EventOrderPaid,
		OrderID:    out.Order.ID,
		PaymentID:  out.Payment.ID,
		UserID:     userID,
		Amount:     out.Payment.Amount,
		Method:     out.Payment.Method,
		Reference:  out.Payment.Reference,
		OccurredAt: out.Payment.CreatedAt,
	}
	if err := u.events.Publish(ctx, strconv.FormatInt(out.Order.ID, 10), ev); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("order_id", out.Order.ID).Msg("publish order event failed")
	}

	return out, nil
}
