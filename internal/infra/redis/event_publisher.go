package redis

import (
	"context"
	"fmt"
	"strings"

	"payment-registry/internal/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const PAYMENT_EVENTS_QUEUE = "payments:events"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listPusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// EventPublisher pushes every committed transition onto a Redis list, newest first.
type EventPublisher struct {
	client listPusher
	queue  string
}

func NewEventPublisher(client listPusher) *EventPublisher {
	return &EventPublisher{client: client, queue: PAYMENT_EVENTS_QUEUE}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.TransitionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}
	if err := p.client.LPush(ctx, p.queue, body).Err(); err != nil {
		return fmt.Errorf("failed to push event %s: %w", event.ID, err)
	}
	return nil
}

// NewClient accepts either a redis:// or unix:// URL or a bare host:port.
func NewClient(url string) (*redis.Client, error) {
	if strings.Contains(url, "://") {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	return redis.NewClient(&redis.Options{Addr: url}), nil
}
