package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mvcapp/internal/app/mvc"
	"mvcapp/internal/app/ports"

	"go.uber.org/zap"
)

const htmlContentType = "text/html; charset=utf-8"

var (
	ErrInvalidRequest = errors.New("invalid page request")
	ErrNotConfigured  = errors.New("page use case not configured")
)

type UseCase struct {
	Registry  *mvc.Registry
	Renderer  ports.ViewRenderer
	Metrics   ports.PageMetrics
	PageViews ports.PageViewRepository
	Logger    *zap.Logger
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Registry == nil || u.Renderer == nil {
		return Response{}, ErrNotConfigured
	}
	if strings.TrimSpace(req.Controller) == "" || strings.TrimSpace(req.Action) == "" {
		return Response{}, ErrInvalidRequest
	}

	route, fn, err := u.Registry.Resolve(req.Controller, req.Action)
	if err != nil {
		u.recordNotFound()
		return Response{}, err
	}
	controller, actionName := route.Controller, route.Action

	result, err := fn(ctx, req.Context)
	if err != nil {
		u.recordFailure()
		return Response{}, fmt.Errorf("execute %s/%s: %w", controller, actionName, err)
	}
	if result == nil {
		u.recordFailure()
		return Response{}, fmt.Errorf("execute %s/%s: action returned no result", controller, actionName)
	}
	if result.ViewName == "" {
		result.ViewName = actionName
	}
	if result.ViewBag == nil {
		result.ViewBag = mvc.ViewBag{}
	}

	body, err := u.Renderer.Render(ctx, controller, result)
	if err != nil {
		u.recordFailure()
		u.logger().Error("render view failed",
			zap.String("controller", controller),
			zap.String("view", result.ViewName),
			zap.String("request_id", req.Context.RequestID),
			zap.Error(err))
		return Response{}, fmt.Errorf("render %s/%s: %w", controller, result.ViewName, err)
	}

	// HEAD requests are health and link checks, not views.
	if req.Context.Method != http.MethodHead {
		if u.Metrics != nil {
			u.Metrics.RecordView(controller, actionName)
		}
		u.appendPageView(ctx, req.Context.RequestID, controller, actionName)
	}

	return Response{
		ViewName:    result.ViewName,
		ContentType: htmlContentType,
		Body:        body,
	}, nil
}

func (u UseCase) appendPageView(ctx context.Context, requestID, controller, action string) {
	if u.PageViews == nil {
		return
	}
	err := u.PageViews.Append(ctx, ports.PageView{
		RequestID:  requestID,
		Controller: controller,
		Action:     action,
		ViewedAt:   u.now(),
	})
	if err != nil {
		u.logger().Warn("append page view failed",
			zap.String("controller", controller),
			zap.String("action", action),
			zap.Error(err))
	}
}

func (u UseCase) recordNotFound() {
	if u.Metrics != nil {
		u.Metrics.RecordNotFound()
	}
}

func (u UseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) logger() *zap.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return zap.NewNop()
}
