package ports

import (
	"context"

	"mvcapp/internal/app/mvc"
)

// TemplateSource loads raw view templates by slash separated name, such as
// "Home/Index.html".
type TemplateSource interface {
	Template(ctx context.Context, name string) ([]byte, error)
}

type ViewRenderer interface {
	Render(ctx context.Context, controller string, result *mvc.ViewResult) ([]byte, error)
}
