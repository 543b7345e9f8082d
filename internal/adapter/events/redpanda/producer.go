// Package redpanda publishes audit events to a Redpanda/Kafka topic.
//
// Events are observability output, not control-plane state. The producer
// buffers in memory and drops on overflow rather than ever blocking an
// admission or poll request.
package redpanda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"

	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/domain"
)

const (
	// DefaultTopic is the Kafka topic for cluster audit events.
	DefaultTopic = "differential.events"

	bufferSize = 1024
)

// Producer wraps a Kafka producer and implements domain.EventSink.
type Producer struct {
	client *kgo.Client
	topic  string

	events    chan domain.Event
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewProducer constructs a Producer publishing to topic.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	slog.Info("creating redpanda event producer", slog.Any("brokers", brokers), slog.String("topic", topic))

	if len(brokers) == 0 {
		return nil, fmt.Errorf("no seed brokers provided")
	}
	if topic == "" {
		topic = DefaultTopic
	}

	// OpenTelemetry hooks so event publishes show up in traces.
	kotelTracer := kotel.NewTracer(
		kotel.TracerProvider(otel.GetTracerProvider()),
	)
	kotelService := kotel.NewKotel(
		kotel.WithTracer(kotelTracer),
	)

	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.WithHooks(kotelService.Hooks()...),
		kgo.RequestRetries(10),
		kgo.ProducerBatchMaxBytes(1000000),
		kgo.DialTimeout(10 * time.Second),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		slog.Error("failed to create redpanda client", slog.Any("error", err))
		return nil, fmt.Errorf("redpanda client: %w", err)
	}

	ctx := context.Background()
	if err := createTopicIfNotExists(ctx, client, topic, 1, 1); err != nil {
		slog.Warn("failed to create topic, it may already exist",
			slog.String("topic", topic),
			slog.Any("error", err))
		// Don't fail if topic creation fails - it might already exist
	}

	p := &Producer{
		client: client,
		topic:  topic,
		events: make(chan domain.Event, bufferSize),
		done:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()

	slog.Info("redpanda event producer created successfully")
	return p, nil
}

// Publish queues one event for delivery. It never blocks: a full buffer or a
// closed producer drops the event and counts the drop.
func (p *Producer) Publish(_ domain.Context, e domain.Event) error {
	select {
	case <-p.done:
		observability.DropEvent()
		return nil
	default:
	}

	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	select {
	case p.events <- e:
	default:
		observability.DropEvent()
		slog.Debug("event buffer full, dropping event", slog.String("type", e.Type))
	}
	return nil
}

func (p *Producer) run() {
	defer p.wg.Done()
	for {
		select {
		case e := <-p.events:
			p.send(e)
		case <-p.done:
			// Drain whatever is already buffered, then stop.
			for {
				select {
				case e := <-p.events:
					p.send(e)
				default:
					return
				}
			}
		}
	}
}

func (p *Producer) send(e domain.Event) {
	b, err := json.Marshal(e)
	if err != nil {
		observability.DropEvent()
		slog.Error("failed to marshal event", slog.String("type", e.Type), slog.Any("error", err))
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(e.ClusterID), // cluster id as key keeps per-cluster ordering
		Value: b,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}

	eventType := e.Type
	p.client.Produce(context.Background(), record, func(_ *kgo.Record, err error) {
		if err != nil {
			observability.DropEvent()
			slog.Warn("failed to produce event", slog.String("type", eventType), slog.Any("error", err))
			return
		}
		observability.PublishEvent(eventType)
	})
}

// Ping probes the seed brokers. Used by the readiness endpoint.
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close stops accepting events, flushes what is buffered and closes the
// client.
func (p *Producer) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.client.Flush(ctx); err != nil {
			slog.Warn("event producer flush on close failed", slog.Any("error", err))
		}
		p.client.Close()
	})
	return nil
}
