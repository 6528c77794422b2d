package usecase

import (
	"context"
	"time"

	"oroshop/internal/domain/model"

	"github.com/google/uuid"
)

// 一意なIDを作る
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文イベントを外へ送る約束
type EventPublisher interface {
	Publish(ctx context.Context, key string, event model.OrderEvent) error
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ブローカー未設定のときに使う
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, model.OrderEvent) error { return nil }
