package application

import (
	"context"
	"fmt"
	"sync"

	"payment-registry/internal/domain"
)

type RegisterPaymentUseCase struct {
	Repo   domain.PaymentRepository
	Events domain.EventPublisher
	// Lock is optional; when set, the exists check and the write run under it.
	Lock sync.Locker
}

func (s *RegisterPaymentUseCase) Execute(ctx context.Context, id string, amount float64, method string) (domain.Payment, error) {
	if err := domain.ValidateInput(amount, method); err != nil {
		return domain.Payment{}, err
	}

	defer acquire(s.Lock)()

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if exists {
		return domain.Payment{}, fmt.Errorf("%w: %s", domain.ErrDuplicatePayment, id)
	}

	p := domain.NewPayment(amount, method)
	if err := s.Repo.SaveOne(ctx, id, p); err != nil {
		return domain.Payment{}, err
	}
	publish(ctx, s.Events, domain.NewTransitionEvent(id, domain.OpRegister, "", p))
	return p, nil
}
