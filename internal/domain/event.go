package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransitionEvent describes a change that has already been written to the store.
type TransitionEvent struct {
	ID         string    `json:"id"`
	PaymentID  string    `json:"payment_id"`
	Operation  Operation `json:"operation"`
	From       Status    `json:"from,omitempty"`
	To         Status    `json:"to"`
	Payment    Payment   `json:"payment"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewTransitionEvent(paymentID string, op Operation, from Status, p Payment) TransitionEvent {
	return TransitionEvent{
		ID:         uuid.NewString(),
		PaymentID:  paymentID,
		Operation:  op,
		From:       from,
		To:         p.Status,
		Payment:    p,
		OccurredAt: time.Now().UTC(),
	}
}
