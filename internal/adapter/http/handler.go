package httpadapter

import (
	"context"
	"errors"
	"html"
	"net/http"
	"net/url"
	"strings"

	"mvcapp/internal/app/mvc"
	"mvcapp/internal/app/page"
	"mvcapp/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
)

const (
	defaultController = "Home"
	defaultAction     = "Index"
)

type Handler struct {
	PageUC    page.UseCase
	Routes    []mvc.Route
	KPI       kpiSnapshotProvider
	PageViews ports.PageViewRepository
	Logger    *zap.Logger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(requestIDMiddleware(), accessLogMiddleware(h.logger()))

	seen := map[string]bool{}
	register := func(path string, route mvc.Route) {
		if seen[path] {
			return
		}
		seen[path] = true
		s.GET(path, h.page(route))
		s.HEAD(path, h.page(route))
	}

	register("/", mvc.Route{Controller: defaultController, Action: defaultAction})
	for _, route := range h.Routes {
		for _, path := range routePaths(route) {
			register(path, route)
		}
	}

	ops := s.Group("/ops", corsMiddleware())
	ops.GET("/kpi", h.kpi)
	ops.GET("/health", h.health)
	ops.GET("/page-views", h.pageViewCount)
	ops.OPTIONS("/kpi", preflight)
	ops.OPTIONS("/health", preflight)
	ops.OPTIONS("/page-views", preflight)

	s.NoRoute(h.notFound)
}

// routePaths lists the conventional paths for route: /Controller/Action, the
// bare /Controller for the default action, and lower case aliases of both.
func routePaths(route mvc.Route) []string {
	paths := []string{route.Path()}
	if strings.EqualFold(route.Action, defaultAction) {
		paths = append(paths, "/"+route.Controller)
	}
	out := make([]string, 0, len(paths)*2)
	for _, p := range paths {
		out = append(out, p)
		if lower := strings.ToLower(p); lower != p {
			out = append(out, lower)
		}
	}
	return out
}

func (h Handler) page(route mvc.Route) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		rc := requestContextFrom(ctx, route)
		resp, err := h.PageUC.Execute(c, page.Request{
			Controller: route.Controller,
			Action:     route.Action,
			Context:    rc,
		})
		if err != nil {
			h.writePageError(ctx, err)
			return
		}
		for key, values := range rc.ResponseHeader {
			for _, v := range values {
				ctx.Response.Header.Add(key, v)
			}
		}
		ctx.Data(consts.StatusOK, resp.ContentType, resp.Body)
	}
}

func requestContextFrom(ctx *app.RequestContext, route mvc.Route) mvc.RequestContext {
	query := url.Values{}
	ctx.QueryArgs().VisitAll(func(key, value []byte) {
		query.Add(string(key), string(value))
	})
	return mvc.RequestContext{
		RequestID: requestIDFrom(ctx),
		Method:    string(ctx.Method()),
		Path:      string(ctx.Path()),
		Query:     query,
		RouteData: mvc.RouteData{
			mvc.RouteKeyController: route.Controller,
			mvc.RouteKeyAction:     route.Action,
		},
		ResponseHeader: http.Header{},
	}
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

type pageViewCountResponse struct {
	Controller string `json:"controller"`
	Action     string `json:"action"`
	Count      int64  `json:"count"`
}

func (h Handler) pageViewCount(c context.Context, ctx *app.RequestContext) {
	if h.PageViews == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "page view log not configured")
		return
	}
	controller := strings.TrimSpace(string(ctx.Query("controller")))
	action := strings.TrimSpace(string(ctx.Query("action")))
	if controller == "" || action == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "controller and action are required")
		return
	}
	// Counts are stored under registered names; map aliases like "home" back.
	for _, route := range h.Routes {
		if strings.EqualFold(route.Controller, controller) && strings.EqualFold(route.Action, action) {
			controller, action = route.Controller, route.Action
			break
		}
	}

	n, err := h.PageViews.CountByAction(c, controller, action)
	if err != nil {
		h.logger().Error("count page views failed", zap.String("request_id", requestIDFrom(ctx)), zap.Error(err))
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	ctx.JSON(consts.StatusOK, pageViewCountResponse{Controller: controller, Action: action, Count: n})
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) notFound(_ context.Context, ctx *app.RequestContext) {
	if strings.HasPrefix(string(ctx.Path()), "/ops/") {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "not found")
		return
	}
	writeErrorPage(ctx, consts.StatusNotFound, "The resource cannot be found.")
}

func (h Handler) writePageError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, mvc.ErrActionNotFound), errors.Is(err, page.ErrInvalidRequest):
		writeErrorPage(ctx, consts.StatusNotFound, "The resource cannot be found.")
	case errors.Is(err, ports.ErrNotFound):
		h.logger().Error("view not found", zap.String("request_id", requestIDFrom(ctx)), zap.Error(err))
		writeErrorPage(ctx, consts.StatusInternalServerError, "The view could not be found.")
	default:
		h.logger().Error("page failed", zap.String("request_id", requestIDFrom(ctx)), zap.Error(err))
		writeErrorPage(ctx, consts.StatusInternalServerError, "An error occurred while processing your request.")
	}
}

func writeErrorPage(ctx *app.RequestContext, status int, message string) {
	body := "<!DOCTYPE html>\n<html>\n<head><title>Error</title></head>\n<body>\n<h2>" +
		html.EscapeString(message) + "</h2>\n</body>\n</html>\n"
	ctx.Data(status, "text/html; charset=utf-8", []byte(body))
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func (h Handler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.NewNop()
}
