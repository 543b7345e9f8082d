package redpanda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/differentialHQ/differential/internal/domain"
)

func TestNewProducer_NoBrokers(t *testing.T) {
	_, err := NewProducer(nil, DefaultTopic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seed brokers")
}

func TestCreateTopicIfNotExists_Validation(t *testing.T) {
	ctx := context.Background()

	err := createTopicIfNotExists(ctx, nil, "", 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic name")

	err = createTopicIfNotExists(ctx, nil, "events", 0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "partitions")

	err = createTopicIfNotExists(ctx, nil, "events", 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replication factor")
}

func TestPublish_FillsDefaults(t *testing.T) {
	// No run loop: the buffered event stays in the channel for inspection.
	p := &Producer{
		topic:  "events",
		events: make(chan domain.Event, 1),
		done:   make(chan struct{}),
	}

	require.NoError(t, p.Publish(context.Background(), domain.Event{Type: domain.EventJobCreated, ClusterID: "cluster-1"}))

	e := <-p.events
	assert.Equal(t, domain.EventJobCreated, e.Type)
	assert.Len(t, e.ID, 26)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestPublish_DropsOnOverflow(t *testing.T) {
	p := &Producer{
		topic:  "events",
		events: make(chan domain.Event, 1),
		done:   make(chan struct{}),
	}

	ctx := context.Background()
	require.NoError(t, p.Publish(ctx, domain.Event{Type: domain.EventJobCreated}))
	require.NoError(t, p.Publish(ctx, domain.Event{Type: domain.EventJobCreated})) // buffer full, dropped

	assert.Len(t, p.events, 1)
}

func TestPublish_DropsAfterClose(t *testing.T) {
	p := &Producer{
		topic:  "events",
		events: make(chan domain.Event, 1),
		done:   make(chan struct{}),
	}
	close(p.done)

	require.NoError(t, p.Publish(context.Background(), domain.Event{Type: domain.EventMachinePing}))
	assert.Len(t, p.events, 0)
}
