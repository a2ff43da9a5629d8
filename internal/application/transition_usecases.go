package application

import (
	"context"
	"fmt"
	"sync"

	"payment-registry/internal/domain"
)

type UpdatePaymentUseCase struct {
	Repo   domain.PaymentRepository
	Events domain.EventPublisher
	Lock   sync.Locker
}

func (s *UpdatePaymentUseCase) Execute(ctx context.Context, id string, amount float64, method string) (domain.Payment, error) {
	if err := domain.ValidateInput(amount, method); err != nil {
		return domain.Payment{}, err
	}

	defer acquire(s.Lock)()

	current, err := s.Repo.LoadOne(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	next, err := domain.Update(current, amount, method)
	if err != nil {
		return current, err
	}
	return commit(ctx, s.Repo, s.Events, id, domain.OpUpdate, current, next)
}

type PayPaymentUseCase struct {
	Repo   domain.PaymentRepository
	Events domain.EventPublisher
	Lock   sync.Locker
}

// Execute persists PAID or FAILED depending on the validator verdict. Nothing is
// written when the payment method has no validator. The payment and the table the
// validator counts come from the same read.
func (s *PayPaymentUseCase) Execute(ctx context.Context, id string) (domain.Payment, error) {
	defer acquire(s.Lock)()

	table, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return domain.Payment{}, err
	}
	current, ok := table[id]
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, id)
	}
	next, err := domain.Pay(id, current, table)
	if err != nil {
		return current, err
	}
	return commit(ctx, s.Repo, s.Events, id, domain.OpPay, current, next)
}

type RevertPaymentUseCase struct {
	Repo   domain.PaymentRepository
	Events domain.EventPublisher
	Lock   sync.Locker
}

func (s *RevertPaymentUseCase) Execute(ctx context.Context, id string) (domain.Payment, error) {
	defer acquire(s.Lock)()

	current, err := s.Repo.LoadOne(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	next, err := domain.Revert(current)
	if err != nil {
		return current, err
	}
	return commit(ctx, s.Repo, s.Events, id, domain.OpRevert, current, next)
}

func commit(
	ctx context.Context,
	repo domain.PaymentRepository,
	events domain.EventPublisher,
	id string,
	op domain.Operation,
	current, next domain.Payment,
) (domain.Payment, error) {
	if err := repo.SaveOne(ctx, id, next); err != nil {
		return current, err
	}
	publish(ctx, events, domain.NewTransitionEvent(id, op, current.Status, next))
	return next, nil
}
