package mvc

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	RouteKeyController = "controller"
	RouteKeyAction     = "action"
)

type RouteData map[string]string

// RequestContext is everything an action may know about the request it serves.
// It is passed to actions explicitly; the zero value is an uninitialized context.
// ResponseHeader, when set, collects headers an action adds to its response.
type RequestContext struct {
	RequestID      string
	Method         string
	Path           string
	Query          url.Values
	RouteData      RouteData
	ResponseHeader http.Header
}

func (rc RequestContext) Initialized() bool {
	return strings.TrimSpace(rc.RequestID) != "" && rc.RouteData != nil
}

func (rc RequestContext) Controller() string {
	return rc.RouteData[RouteKeyController]
}

func (rc RequestContext) Action() string {
	return rc.RouteData[RouteKeyAction]
}

// SetResponseHeader records a response header. It is a no-op when the context
// has no response sink.
func (rc RequestContext) SetResponseHeader(key, value string) {
	if rc.ResponseHeader != nil {
		rc.ResponseHeader.Set(key, value)
	}
}
