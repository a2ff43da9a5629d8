package domain

// stateRules holds what each operation does for one status.
type stateRules struct {
	pay    func(id string, p Payment, table Table) (Payment, error)
	update func(p Payment, amount float64, method string) (Payment, error)
	revert func(p Payment) (Payment, error)
}

var machine = map[Status]stateRules{
	StatusRegistered: {
		pay:    payRegistered,
		update: updateRegistered,
		revert: rejectRevert(StatusRegistered, "cannot revert a REGISTERED payment"),
	},
	StatusPaid: {
		pay:    rejectPay(StatusPaid, "already PAID"),
		update: rejectUpdate(StatusPaid, "cannot update a PAID payment"),
		revert: rejectRevert(StatusPaid, "cannot revert a PAID payment"),
	},
	StatusFailed: {
		pay:    rejectPay(StatusFailed, "cannot pay a FAILED payment; revert to REGISTERED first"),
		update: rejectUpdate(StatusFailed, "cannot update a FAILED payment"),
		revert: revertFailed,
	},
}

// Pay runs the method's validator and moves a REGISTERED payment to PAID or FAILED.
// The table is only read. An unresolvable method leaves p as it was.
func Pay(id string, p Payment, table Table) (Payment, error) {
	rules, err := rulesFor(p.Status, OpPay)
	if err != nil {
		return p, err
	}
	return rules.pay(id, p, table)
}

// Update replaces amount and method of a REGISTERED payment.
func Update(p Payment, amount float64, method string) (Payment, error) {
	rules, err := rulesFor(p.Status, OpUpdate)
	if err != nil {
		return p, err
	}
	return rules.update(p, amount, method)
}

// Revert moves a FAILED payment back to REGISTERED.
func Revert(p Payment) (Payment, error) {
	rules, err := rulesFor(p.Status, OpRevert)
	if err != nil {
		return p, err
	}
	return rules.revert(p)
}

func rulesFor(status Status, op Operation) (stateRules, error) {
	rules, ok := machine[status]
	if !ok {
		return stateRules{}, NewInvalidTransitionError(status, op, "unknown status "+string(status))
	}
	return rules, nil
}

func payRegistered(id string, p Payment, table Table) (Payment, error) {
	validator, err := ResolveValidator(p.PaymentMethod)
	if err != nil {
		return p, err
	}
	if validator.Validate(id, p.Amount, p.PaymentMethod, table) {
		p.Status = StatusPaid
	} else {
		p.Status = StatusFailed
	}
	return p, nil
}

func updateRegistered(p Payment, amount float64, method string) (Payment, error) {
	p.Amount = amount
	p.PaymentMethod = method
	return p, nil
}

func revertFailed(p Payment) (Payment, error) {
	p.Status = StatusRegistered
	return p, nil
}

func rejectPay(status Status, reason string) func(string, Payment, Table) (Payment, error) {
	return func(_ string, p Payment, _ Table) (Payment, error) {
		return p, NewInvalidTransitionError(status, OpPay, reason)
	}
}

func rejectUpdate(status Status, reason string) func(Payment, float64, string) (Payment, error) {
	return func(p Payment, _ float64, _ string) (Payment, error) {
		return p, NewInvalidTransitionError(status, OpUpdate, reason)
	}
}

func rejectRevert(status Status, reason string) func(Payment) (Payment, error) {
	return func(p Payment) (Payment, error) {
		return p, NewInvalidTransitionError(status, OpRevert, reason)
	}
}
