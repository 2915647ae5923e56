package home

import (
	"context"

	"mvcapp/internal/app/mvc"
)

const (
	Name           = "Home"
	WelcomeMessage = "Welcome to ASP.NET MVC!"
)

// Controller serves the site's landing pages. It holds no state.
type Controller struct{}

func (Controller) Index() *mvc.ViewResult {
	result := mvc.View("Index")
	result.ViewBag["Message"] = WelcomeMessage
	return result
}

func (Controller) About(rc mvc.RequestContext) (*mvc.ViewResult, error) {
	if !rc.Initialized() {
		return nil, mvc.ErrContextNotInitialized
	}
	return mvc.View("About"), nil
}

// Register adds the controller's actions under Name.
func (c Controller) Register(r *mvc.Registry) error {
	if err := r.Register(Name, "Index", func(context.Context, mvc.RequestContext) (*mvc.ViewResult, error) {
		return c.Index(), nil
	}); err != nil {
		return err
	}
	return r.Register(Name, "About", func(_ context.Context, rc mvc.RequestContext) (*mvc.ViewResult, error) {
		return c.About(rc)
	})
}
