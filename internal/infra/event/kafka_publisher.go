package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"oroshop/internal/domain/model"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// messageWriter は kafka.Writer のうち使う部分だけ。テストで差し替える。
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// 注文イベントをKafkaへ送る
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	closed atomic.Bool
}

func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka: empty topic")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error().Msgf("kafka writer: "+msg, args...)
		}),
	}
	return newKafkaPublisher(w, topic), nil
}

func newKafkaPublisher(w messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic}
}

// 同期送信。同じ注文IDは同じパーティションに入る。
func (p *KafkaPublisher) Publish(ctx context.Context, key string, ev model.OrderEvent) error {
	if p.closed.Load() {
		return fmt.Errorf("kafka: publisher closed")
	}

	msg, err := buildMessage(key, ev)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write %s: %w", p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

func buildMessage(key string, ev model.OrderEvent) (kafka.Message, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(key),
		Value: body,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	}, nil
}
