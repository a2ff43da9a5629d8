package domain

type Summary struct {
	Registered SummaryItem `json:"REGISTERED"`
	Paid       SummaryItem `json:"PAID"`
	Failed     SummaryItem `json:"FAILED"`
}

type SummaryItem struct {
	TotalPayments int     `json:"total_payments"`
	TotalAmount   float64 `json:"total_amount"`
}

// Summarize groups the table by status. Rows with an unknown status are skipped.
func Summarize(table Table) Summary {
	var s Summary
	for _, p := range table {
		var item *SummaryItem
		switch p.Status {
		case StatusRegistered:
			item = &s.Registered
		case StatusPaid:
			item = &s.Paid
		case StatusFailed:
			item = &s.Failed
		default:
			continue
		}
		item.TotalPayments++
		item.TotalAmount += p.Amount
	}
	return s
}
