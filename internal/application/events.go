package application

import (
	"context"
	"log"
	"sync"

	"payment-registry/internal/domain"
)

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.TransitionEvent) error {
	return nil
}

// publish never fails the caller: the store write has already happened.
func publish(ctx context.Context, events domain.EventPublisher, evt domain.TransitionEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, evt); err != nil {
		log.Printf("[Events] Failed to publish %s for payment %s: %v", evt.Operation, evt.PaymentID, err)
	}
}

func acquire(l sync.Locker) func() {
	if l == nil {
		return func() {}
	}
	l.Lock()
	return l.Unlock
}
