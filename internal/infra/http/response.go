package http

import (
	"sort"

	"payment-registry/internal/domain"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/valyala/fasthttp"
)

func writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	body, err := easyjson.Marshal(v)
	if err != nil {
		ctx.Error("failed to encode response", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

type paymentResponse struct {
	PaymentID string
	Data      domain.Payment
}

func (r paymentResponse) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"payment_id":`)
	w.String(r.PaymentID)
	w.RawString(`,"data":`)
	writePayment(w, r.Data)
	w.RawByte('}')
}

type allPaymentsResponse struct {
	Payments domain.Table
}

func (r allPaymentsResponse) MarshalEasyJSON(w *jwriter.Writer) {
	ids := make([]string, 0, len(r.Payments))
	for id := range r.Payments {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w.RawString(`{"all_payments":{`)
	for i, id := range ids {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(id)
		w.RawByte(':')
		writePayment(w, r.Payments[id])
	}
	w.RawString(`}}`)
}

type summaryResponse domain.Summary

func (r summaryResponse) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"REGISTERED":`)
	writeSummaryItem(w, r.Registered)
	w.RawString(`,"PAID":`)
	writeSummaryItem(w, r.Paid)
	w.RawString(`,"FAILED":`)
	writeSummaryItem(w, r.Failed)
	w.RawByte('}')
}

type errorResponse struct {
	Detail string
}

func (r errorResponse) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"detail":`)
	w.String(r.Detail)
	w.RawByte('}')
}

func writePayment(w *jwriter.Writer, p domain.Payment) {
	w.RawString(`{"amount":`)
	w.Float64(p.Amount)
	w.RawString(`,"payment_method":`)
	w.String(p.PaymentMethod)
	w.RawString(`,"status":`)
	w.String(string(p.Status))
	w.RawByte('}')
}

func writeSummaryItem(w *jwriter.Writer, item domain.SummaryItem) {
	w.RawString(`{"total_payments":`)
	w.Int(item.TotalPayments)
	w.RawString(`,"total_amount":`)
	w.Float64(item.TotalAmount)
	w.RawByte('}')
}
