package application

import (
	"context"

	"payment-registry/internal/domain"
)

type GetSummaryUseCase struct {
	Repo domain.PaymentRepository
}

func (s *GetSummaryUseCase) Execute(ctx context.Context) (domain.Summary, error) {
	table, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(table), nil
}
