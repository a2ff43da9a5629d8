package application

import (
	"context"
	"errors"
	"testing"

	"payment-registry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errDisk = errors.New("disk full")

func TestRegisterPayment_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	events := new(MockPublisher)
	want := domain.Payment{Amount: 2000, PaymentMethod: "paypal", Status: domain.StatusRegistered}

	repo.On("Exists", ctx, "1").Return(false, nil)
	repo.On("SaveOne", ctx, "1", want).Return(nil)
	events.On("Publish", ctx, mock.MatchedBy(func(evt domain.TransitionEvent) bool {
		return evt.PaymentID == "1" && evt.Operation == domain.OpRegister && evt.To == domain.StatusRegistered
	})).Return(nil)

	uc := &RegisterPaymentUseCase{Repo: repo, Events: events}
	got, err := uc.Execute(ctx, "1", 2000, "paypal")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestRegisterPayment_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Exists", ctx, "1").Return(true, nil)

	uc := &RegisterPaymentUseCase{Repo: repo}
	_, err := uc.Execute(ctx, "1", 10, "paypal")

	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
	repo.AssertNotCalled(t, "SaveOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterPayment_InvalidInputNeverTouchesStore(t *testing.T) {
	repo := new(MockRepository)
	uc := &RegisterPaymentUseCase{Repo: repo}

	_, err := uc.Execute(context.Background(), "1", 0, "paypal")
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Execute(context.Background(), "1", 10, "")
	require.ErrorAs(t, err, &validationErr)

	repo.AssertExpectations(t)
	assert.Empty(t, repo.Calls)
}

func TestPayPayment_UnsupportedMethodIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	stored := domain.NewPayment(100, "bitcoin")

	repo.On("LoadAll", ctx).Return(domain.Table{"5": stored}, nil)

	uc := &PayPaymentUseCase{Repo: repo, Events: NoopPublisher{}}
	got, err := uc.Execute(ctx, "5")

	var unsupported *domain.UnsupportedMethodError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, stored, got)
	repo.AssertNotCalled(t, "SaveOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayPayment_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("LoadAll", ctx).Return(domain.Table{"y": domain.NewPayment(1, "paypal")}, nil)

	_, err := (&PayPaymentUseCase{Repo: repo}).Execute(ctx, "x")

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPayPayment_ValidatesAgainstTheSameRead(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	first := domain.NewPayment(200, "tarjeta")
	second := domain.NewPayment(300, "tarjeta")
	want := domain.Payment{Amount: 300, PaymentMethod: "tarjeta", Status: domain.StatusFailed}

	repo.On("LoadAll", ctx).Return(domain.Table{"3": first, "4": second}, nil).Once()
	repo.On("SaveOne", ctx, "4", want).Return(nil)

	got, err := (&PayPaymentUseCase{Repo: repo}).Execute(ctx, "4")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "LoadAll", 1)
	repo.AssertNotCalled(t, "LoadOne", mock.Anything, mock.Anything)
}

func TestPayPayment_SaveFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	events := new(MockPublisher)
	stored := domain.NewPayment(100, "paypal")

	repo.On("LoadAll", ctx).Return(domain.Table{"1": stored}, nil)
	repo.On("SaveOne", ctx, "1", mock.Anything).Return(errDisk)

	got, err := (&PayPaymentUseCase{Repo: repo, Events: events}).Execute(ctx, "1")

	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, domain.StatusRegistered, got.Status)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestTransition_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	events := new(MockPublisher)
	failed := domain.Payment{Amount: 6000, PaymentMethod: "paypal", Status: domain.StatusFailed}
	reverted := domain.Payment{Amount: 6000, PaymentMethod: "paypal", Status: domain.StatusRegistered}

	repo.On("LoadOne", ctx, "2").Return(failed, nil)
	repo.On("SaveOne", ctx, "2", reverted).Return(nil)
	events.On("Publish", ctx, mock.Anything).Return(errors.New("redis down"))

	got, err := (&RevertPaymentUseCase{Repo: repo, Events: events}).Execute(ctx, "2")

	require.NoError(t, err)
	assert.Equal(t, reverted, got)
	events.AssertExpectations(t)
}

func TestUpdatePayment_RejectedTransitionIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	paid := domain.Payment{Amount: 10, PaymentMethod: "paypal", Status: domain.StatusPaid}
	repo.On("LoadOne", ctx, "1").Return(paid, nil)

	got, err := (&UpdatePaymentUseCase{Repo: repo}).Execute(ctx, "1", 20, "card")

	var transitionErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, paid, got)
	repo.AssertNotCalled(t, "SaveOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSummary_StorageError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("LoadAll", ctx).Return(nil, domain.ErrStorage)

	_, err := (&GetSummaryUseCase{Repo: repo}).Execute(ctx)

	assert.ErrorIs(t, err, domain.ErrStorage)
}

type countingLocker struct {
	locks, unlocks int
}

func (l *countingLocker) Lock()   { l.locks++ }
func (l *countingLocker) Unlock() { l.unlocks++ }

func TestLockWrapsReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	lock := &countingLocker{}
	stored := domain.NewPayment(10, "paypal")

	repo.On("LoadAll", ctx).Return(domain.Table{"1": stored}, nil)
	repo.On("SaveOne", ctx, "1", mock.Anything).Return(nil)

	_, err := (&PayPaymentUseCase{Repo: repo, Lock: lock}).Execute(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, 1, lock.locks)
	assert.Equal(t, 1, lock.unlocks)
}
