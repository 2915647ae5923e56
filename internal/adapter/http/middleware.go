package httpadapter

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// assignRequestID keeps a caller supplied X-Request-ID when it is usable and
// mints one otherwise. The id is echoed on the response.
func assignRequestID(ctx *app.RequestContext) string {
	id := strings.TrimSpace(string(ctx.GetHeader(requestIDHeader)))
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	ctx.Set(requestIDKey, id)
	ctx.Response.Header.Set(requestIDHeader, id)
	return id
}

func requestIDFrom(ctx *app.RequestContext) string {
	return ctx.GetString(requestIDKey)
}

func requestIDMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		assignRequestID(ctx)
		ctx.Next(c)
	}
}

func accessLogMiddleware(logger *zap.Logger) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		logger.Info("request",
			zap.String("method", string(ctx.Method())),
			zap.String("path", string(ctx.Path())),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestIDFrom(ctx)))
	}
}
