package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// トピック名
const (
	TopicCartChanged  = "cart.changed"
	TopicOrderCreated = "order.created"
	TopicOrderStatus  = "order.status_changed"
)

// Publisherはドメインイベントの通知の約束。
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload interface{}) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// DI
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

// イベントをJSONで送る
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("event: marshal failed: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("event: publish %s failed: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
