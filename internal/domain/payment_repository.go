package domain

import "context"

// PaymentRepository persists the payment table. Every call works on the full table;
// there is no caching and no locking.
type PaymentRepository interface {
	LoadAll(ctx context.Context) (Table, error)
	SaveAll(ctx context.Context, table Table) error
	LoadOne(ctx context.Context, id string) (Payment, error)
	Exists(ctx context.Context, id string) (bool, error)
	SaveOne(ctx context.Context, id string, payment Payment) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event TransitionEvent) error
}
