package domain

import "strings"

const (
	cardAmountLimit   = 10000
	paypalAmountLimit = 5000

	// maxRegisteredPerCard counts the payment being validated too.
	maxRegisteredPerCard = 1
)

// Validator decides whether a REGISTERED payment may move to PAID.
// Implementations read the table but never modify it.
type Validator interface {
	Validate(id string, amount float64, method string, table Table) bool
}

type CardValidator struct{}

func (CardValidator) Validate(_ string, amount float64, method string, table Table) bool {
	if amount >= cardAmountLimit {
		return false
	}
	registered := 0
	for _, p := range table {
		if p.PaymentMethod == method && p.Status == StatusRegistered {
			registered++
		}
	}
	return registered <= maxRegisteredPerCard
}

type PaypalValidator struct{}

func (PaypalValidator) Validate(_ string, amount float64, _ string, _ Table) bool {
	return amount < paypalAmountLimit
}

type validatorRule struct {
	keywords  []string
	validator Validator
}

// Rules are checked in order, so a method naming both a card and paypal is a card.
var validatorRules = []validatorRule{
	{keywords: []string{"tarjeta", "card"}, validator: CardValidator{}},
	{keywords: []string{"paypal"}, validator: PaypalValidator{}},
}

// ResolveValidator picks the validator whose keyword appears in method, ignoring case.
func ResolveValidator(method string) (Validator, error) {
	lowered := strings.ToLower(method)
	for _, rule := range validatorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.validator, nil
			}
		}
	}
	return nil, NewUnsupportedMethodError(method)
}
