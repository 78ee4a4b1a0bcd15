// Package kafka publishes lifecycle events to a Kafka topic. Emission
// is fire and forget: a write failure is logged and counted but never
// surfaces to the business operation that triggered it.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/metrics"
)

const (
	eventJobCreated   = "job.created"
	eventJobUpdated   = "job.updated"
	eventOrderCreated = "order.created"
	eventOrderUpdated = "order.updated"
)

// messageWriter is the part of kafka.Writer the emitter uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// EventEmitter implements ports.EventEmitter on top of a kafka.Writer.
type EventEmitter struct {
	writer messageWriter
}

// NewEventEmitter creates an emitter over the given writer.
func NewEventEmitter(writer messageWriter) *EventEmitter {
	return &EventEmitter{writer: writer}
}

// NewWriter builds a kafka.Writer for the emitter with the batching
// settings the service uses everywhere.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// jobEventPayload is the wire shape of job lifecycle events.
type jobEventPayload struct {
	Event       string     `json:"event"`
	JobID       string     `json:"job_id"`
	OrderID     string     `json:"order_id"`
	StudentID   string     `json:"student_id"`
	MoverID     *string    `json:"mover_id,omitempty"`
	JobType     string     `json:"job_type"`
	Status      string     `json:"status"`
	PriceCents  int64      `json:"price_cents"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	By          *string    `json:"by,omitempty"`
	At          time.Time  `json:"at"`
}

// orderEventPayload is the wire shape of order lifecycle events.
type orderEventPayload struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	StudentID  string    `json:"student_id"`
	MoverID    *string   `json:"mover_id,omitempty"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"price_cents"`
	By         *string   `json:"by,omitempty"`
	At         time.Time `json:"at"`
}

// EmitJobCreated publishes that a new job was opened.
func (e *EventEmitter) EmitJobCreated(ctx context.Context, aggregate *job.Job, meta ports.EventMeta) {
	e.emitJob(ctx, eventJobCreated, aggregate, meta)
}

// EmitJobUpdated publishes that a job changed status or assignment.
func (e *EventEmitter) EmitJobUpdated(ctx context.Context, aggregate *job.Job, meta ports.EventMeta) {
	e.emitJob(ctx, eventJobUpdated, aggregate, meta)
}

// EmitOrderCreated publishes that a new order was placed.
func (e *EventEmitter) EmitOrderCreated(ctx context.Context, aggregate *order.Order, meta ports.EventMeta) {
	e.emitOrder(ctx, eventOrderCreated, aggregate, meta)
}

// EmitOrderUpdated publishes that an order changed status.
func (e *EventEmitter) EmitOrderUpdated(ctx context.Context, aggregate *order.Order, meta ports.EventMeta) {
	e.emitOrder(ctx, eventOrderUpdated, aggregate, meta)
}

func (e *EventEmitter) emitJob(ctx context.Context, event string, aggregate *job.Job, meta ports.EventMeta) {
	var moverID *string
	if id := aggregate.Mover(); id != nil {
		s := id.String()
		moverID = &s
	}

	payload := jobEventPayload{
		Event:       event,
		JobID:       aggregate.ID().String(),
		OrderID:     aggregate.OrderID().String(),
		StudentID:   aggregate.StudentID().String(),
		MoverID:     moverID,
		JobType:     aggregate.JobType().String(),
		Status:      aggregate.Status().String(),
		PriceCents:  aggregate.Price().Cents(),
		ScheduledAt: aggregate.ScheduledAt(),
		By:          metaBy(meta),
		At:          metaAt(meta),
	}

	e.publish(ctx, event, aggregate.ID().String(), payload)
}

func (e *EventEmitter) emitOrder(ctx context.Context, event string, aggregate *order.Order, meta ports.EventMeta) {
	var moverID *string
	if id := aggregate.Mover(); id != nil {
		s := id.String()
		moverID = &s
	}

	payload := orderEventPayload{
		Event:      event,
		OrderID:    aggregate.ID().String(),
		StudentID:  aggregate.StudentID().String(),
		MoverID:    moverID,
		Status:     aggregate.Status().String(),
		PriceCents: aggregate.Price().Cents(),
		By:         metaBy(meta),
		At:         metaAt(meta),
	}

	e.publish(ctx, event, aggregate.ID().String(), payload)
}

func (e *EventEmitter) publish(ctx context.Context, event, key string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		e.fail(event, key, err)
		return
	}

	err = e.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		e.fail(event, key, err)
	}
}

func (e *EventEmitter) fail(event, key string, err error) {
	zap.L().Warn("failed to publish event",
		zap.String("event", event),
		zap.String("key", key),
		zap.Error(err))
	metrics.SecondaryEffectFailures.WithLabelValues("event").Inc()
}

func metaBy(meta ports.EventMeta) *string {
	if meta.By == nil {
		return nil
	}
	s := meta.By.String()
	return &s
}

func metaAt(meta ports.EventMeta) time.Time {
	if meta.At.IsZero() {
		return time.Now().UTC()
	}
	return meta.At
}
