package http

import (
	"payment-registry/internal/application"

	"github.com/buaazp/fasthttprouter"
	"github.com/valyala/fasthttp"
)

func SetupRoutes(useCases *application.UseCases) fasthttp.RequestHandler {
	handler := &Handler{UseCases: useCases}

	router := fasthttprouter.New()
	router.GET("/payments", handler.ListPayments)
	router.POST("/payments/:id", handler.RegisterPayment)
	router.POST("/payments/:id/update", handler.UpdatePayment)
	router.POST("/payments/:id/pay", handler.PayPayment)
	router.POST("/payments/:id/revert", handler.RevertPayment)
	router.GET("/payments-summary", handler.HandleSummary)
	router.GET("/health", handler.HandleHealth)

	return withRequestID(router.Handler)
}
