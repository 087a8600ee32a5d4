package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

type OrderEventType string

var (
	OrderEventCreated OrderEventType = "order.created"
	OrderEventUpdated OrderEventType = "order.updated"
)

// 訂單異動事件，給下游同步用
type OrderEvent struct {
	EventType   OrderEventType `json:"event_type"`
	OrderCode   string         `json:"order_code"`
	TotalAmount string         `json:"total_amount"`
	Order       *model.Order   `json:"order"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// IOrderEventProducer 訂單事件發布介面
type IOrderEventProducer interface {
	OrderCreated(ctx context.Context, order *model.Order) error
	OrderUpdated(ctx context.Context, order *model.Order) error
	Close() error
}

type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) OrderCreated(ctx context.Context, order *model.Order) error {
	return p.produce(ctx, OrderEventCreated, order)
}

func (p *OrderEventProducer) OrderUpdated(ctx context.Context, order *model.Order) error {
	return p.produce(ctx, OrderEventUpdated, order)
}

func (p *OrderEventProducer) produce(ctx context.Context, eventType OrderEventType, order *model.Order) error {
	msg, err := convertToMessage(eventType, order)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}

// 以訂單編號當key，同一張訂單的事件落在同一個partition保序
func convertToMessage(eventType OrderEventType, order *model.Order) (kafka.Message, error) {
	event := OrderEvent{
		EventType:   eventType,
		OrderCode:   order.Code,
		TotalAmount: order.TotalAmount().String(),
		Order:       order,
		OccurredAt:  time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(order.Code),
		Value: value,
	}, nil
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)
