package http

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"payment-registry/internal/application"
	"payment-registry/internal/domain"

	"github.com/valyala/fasthttp"
)

type Handler struct {
	UseCases *application.UseCases
}

func (h *Handler) ListPayments(ctx *fasthttp.RequestCtx) {
	table, err := h.UseCases.List.Execute(ctx)
	if err != nil {
		h.writeError(ctx, "", err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, allPaymentsResponse{Payments: table})
}

func (h *Handler) RegisterPayment(ctx *fasthttp.RequestCtx) {
	id := paymentID(ctx)
	amount, method, err := parsePaymentParams(ctx.QueryArgs())
	if err != nil {
		h.writeError(ctx, id, err)
		return
	}
	p, err := h.UseCases.Register.Execute(ctx, id, amount, method)
	if err != nil {
		h.writeError(ctx, id, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, paymentResponse{PaymentID: id, Data: p})
}

func (h *Handler) UpdatePayment(ctx *fasthttp.RequestCtx) {
	id := paymentID(ctx)
	amount, method, err := parsePaymentParams(ctx.QueryArgs())
	if err != nil {
		h.writeError(ctx, id, err)
		return
	}
	p, err := h.UseCases.Update.Execute(ctx, id, amount, method)
	if err != nil {
		h.writeError(ctx, id, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, paymentResponse{PaymentID: id, Data: p})
}

func (h *Handler) PayPayment(ctx *fasthttp.RequestCtx) {
	id := paymentID(ctx)
	p, err := h.UseCases.Pay.Execute(ctx, id)
	if err != nil {
		h.writeError(ctx, id, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, paymentResponse{PaymentID: id, Data: p})
}

func (h *Handler) RevertPayment(ctx *fasthttp.RequestCtx) {
	id := paymentID(ctx)
	p, err := h.UseCases.Revert.Execute(ctx, id)
	if err != nil {
		h.writeError(ctx, id, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, paymentResponse{PaymentID: id, Data: p})
}

func (h *Handler) HandleSummary(ctx *fasthttp.RequestCtx) {
	summary, err := h.UseCases.Summary.Execute(ctx)
	if err != nil {
		h.writeError(ctx, "", err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, summaryResponse(summary))
}

func (h *Handler) HandleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("ok")
}

// writeError is the one place domain errors become HTTP statuses.
func (h *Handler) writeError(ctx *fasthttp.RequestCtx, id string, err error) {
	var (
		validationErr  *domain.ValidationError
		transitionErr  *domain.InvalidTransitionError
		unsupportedErr *domain.UnsupportedMethodError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, errorResponse{Detail: validationErr.Error()})
	case errors.Is(err, domain.ErrPaymentNotFound):
		writeJSON(ctx, fasthttp.StatusNotFound, errorResponse{Detail: fmt.Sprintf("payment %s does not exist", id)})
	case errors.Is(err, domain.ErrDuplicatePayment):
		writeJSON(ctx, fasthttp.StatusConflict, errorResponse{Detail: fmt.Sprintf("payment %s already exists", id)})
	case errors.As(err, &transitionErr):
		writeJSON(ctx, fasthttp.StatusConflict, errorResponse{Detail: transitionErr.Error()})
	case errors.As(err, &unsupportedErr):
		writeJSON(ctx, fasthttp.StatusConflict, errorResponse{Detail: unsupportedErr.Error()})
	default:
		log.Printf("[Handler] %s %s failed (request %s): %v", ctx.Method(), ctx.Path(), requestID(ctx), err)
		writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{Detail: "internal storage error"})
	}
}

func paymentID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

func parsePaymentParams(args *fasthttp.Args) (float64, string, error) {
	if !args.Has("amount") {
		return 0, "", domain.NewValidationError("amount", "field required")
	}
	amount, err := strconv.ParseFloat(string(args.Peek("amount")), 64)
	if err != nil {
		return 0, "", domain.NewValidationError("amount", "must be a number")
	}
	if !args.Has("payment_method") {
		return 0, "", domain.NewValidationError("payment_method", "field required")
	}
	method := string(args.Peek("payment_method"))
	if err := domain.ValidateInput(amount, method); err != nil {
		return 0, "", err
	}
	return amount, method, nil
}
