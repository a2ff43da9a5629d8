package application

import (
	"context"

	"payment-registry/internal/domain"
)

type ListPaymentsUseCase struct {
	Repo domain.PaymentRepository
}

func (s *ListPaymentsUseCase) Execute(ctx context.Context) (domain.Table, error) {
	return s.Repo.LoadAll(ctx)
}
