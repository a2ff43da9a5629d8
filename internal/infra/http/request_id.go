package http

import (
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const RequestIDHeader = "X-Request-Id"

const requestIDKey = "request_id"

// withRequestID keeps the caller's request id or assigns a fresh one, and echoes it back.
func withRequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.SetUserValue(requestIDKey, id)
		ctx.Response.Header.Set(RequestIDHeader, id)
		next(ctx)
	}
}

func requestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}
