package domain

import "math"

type Status string

const (
	StatusRegistered Status = "REGISTERED"
	StatusPaid       Status = "PAID"
	StatusFailed     Status = "FAILED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRegistered, StatusPaid, StatusFailed:
		return true
	}
	return false
}

type Payment struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        Status  `json:"status"`
}

// Table is the whole persisted payment registry keyed by payment id.
type Table map[string]Payment

func NewPayment(amount float64, method string) Payment {
	return Payment{
		Amount:        amount,
		PaymentMethod: method,
		Status:        StatusRegistered,
	}
}

// ValidateInput checks the amount and method supplied on register and update.
func ValidateInput(amount float64, method string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NewValidationError("amount", "must be a finite number")
	}
	if amount <= 0 {
		return NewValidationError("amount", "must be greater than 0")
	}
	if method == "" {
		return NewValidationError("payment_method", "must not be empty")
	}
	return nil
}
