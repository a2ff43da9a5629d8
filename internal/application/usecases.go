package application

import (
	"sync"

	"payment-registry/internal/domain"
)

// UseCases bundles every operation over one repository.
type UseCases struct {
	List     *ListPaymentsUseCase
	Register *RegisterPaymentUseCase
	Update   *UpdatePaymentUseCase
	Pay      *PayPaymentUseCase
	Revert   *RevertPaymentUseCase
	Summary  *GetSummaryUseCase
}

// NewUseCases wires the use cases. With serialize set, all writing operations
// share one mutex so concurrent requests in this process cannot lose updates.
func NewUseCases(repo domain.PaymentRepository, events domain.EventPublisher, serialize bool) *UseCases {
	if events == nil {
		events = NoopPublisher{}
	}
	var lock sync.Locker
	if serialize {
		lock = &sync.Mutex{}
	}
	return &UseCases{
		List:     &ListPaymentsUseCase{Repo: repo},
		Register: &RegisterPaymentUseCase{Repo: repo, Events: events, Lock: lock},
		Update:   &UpdatePaymentUseCase{Repo: repo, Events: events, Lock: lock},
		Pay:      &PayPaymentUseCase{Repo: repo, Events: events, Lock: lock},
		Revert:   &RevertPaymentUseCase{Repo: repo, Events: events, Lock: lock},
		Summary:  &GetSummaryUseCase{Repo: repo},
	}
}
