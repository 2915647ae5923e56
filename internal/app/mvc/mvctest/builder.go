// Package mvctest fabricates request contexts so controller actions can run
// in tests without a server.
package mvctest

import (
	"net/http"
	"net/url"

	"mvcapp/internal/app/mvc"

	"github.com/google/uuid"
)

type Builder struct {
	Method    string
	Query     url.Values
	RequestID func() string
}

func NewBuilder() *Builder {
	return &Builder{
		Method:    http.MethodGet,
		Query:     url.Values{},
		RequestID: uuid.NewString,
	}
}

// InitializeController builds the context controller's action would receive
// for a conventional /{controller}/{action} request, with an empty response
// header sink the test can inspect afterwards.
func (b *Builder) InitializeController(controller, action string) mvc.RequestContext {
	method := b.Method
	if method == "" {
		method = http.MethodGet
	}
	newID := b.RequestID
	if newID == nil {
		newID = uuid.NewString
	}
	query := url.Values{}
	for k, v := range b.Query {
		query[k] = append([]string(nil), v...)
	}
	route := mvc.Route{Controller: controller, Action: action}
	return mvc.RequestContext{
		RequestID: newID(),
		Method:    method,
		Path:      route.Path(),
		Query:     query,
		RouteData: mvc.RouteData{
			mvc.RouteKeyController: controller,
			mvc.RouteKeyAction:     action,
		},
		ResponseHeader: http.Header{},
	}
}
