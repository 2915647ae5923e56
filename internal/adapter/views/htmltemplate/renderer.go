package htmltemplate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"

	"mvcapp/internal/app/mvc"
	"mvcapp/internal/app/ports"

	"golang.org/x/sync/singleflight"
)

const (
	LayoutName = "Shared/_Layout.html"
	rootName   = "layout"
)

var ErrNilResult = errors.New("nil view result")

// ViewData is the value templates execute against.
type ViewData struct {
	AppName    string
	Controller string
	ViewName   string
	ViewBag    mvc.ViewBag
	Model      any
}

// Renderer executes a view inside the shared layout. A view template is
// expected to define "title" and "body".
type Renderer struct {
	Source  ports.TemplateSource
	AppName string
	Cache   bool

	mu     sync.Mutex
	parsed map[string]*template.Template
	loads  singleflight.Group
}

func NewRenderer(source ports.TemplateSource, appName string, cache bool) *Renderer {
	return &Renderer{
		Source:  source,
		AppName: appName,
		Cache:   cache,
		parsed:  map[string]*template.Template{},
	}
}

func (r *Renderer) Render(ctx context.Context, controller string, result *mvc.ViewResult) ([]byte, error) {
	if result == nil {
		return nil, ErrNilResult
	}
	name := ViewPath(controller, result.ViewName)
	tmpl, err := r.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, rootName, ViewData{
		AppName:    r.AppName,
		Controller: controller,
		ViewName:   result.ViewName,
		ViewBag:    result.ViewBag,
		Model:      result.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func ViewPath(controller, view string) string {
	return controller + "/" + view + ".html"
}

func (r *Renderer) lookup(ctx context.Context, name string) (*template.Template, error) {
	if !r.Cache {
		return r.load(ctx, name)
	}

	r.mu.Lock()
	t, ok := r.parsed[name]
	r.mu.Unlock()
	if ok {
		return t, nil
	}

	// Concurrent cold renders of one view share a single load and parse.
	v, err, _ := r.loads.Do(name, func() (any, error) {
		t, err := r.load(ctx, name)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.parsed == nil {
			r.parsed = map[string]*template.Template{}
		}
		r.parsed[name] = t
		r.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*template.Template), nil
}

func (r *Renderer) load(ctx context.Context, name string) (*template.Template, error) {
	layout, err := r.Source.Template(ctx, LayoutName)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	view, err := r.Source.Template(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load view: %w", err)
	}
	t, err := template.New(rootName).Parse(string(layout))
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if _, err := t.New(name).Parse(string(view)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, nil
}
