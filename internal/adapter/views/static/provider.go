package staticviews

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mvcapp/internal/app/ports"
)

//go:embed all:templates
var embedded embed.FS

// Embedded holds the templates built into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Provider reads templates from Root, then from Fallback when Root is unset or
// lacks the template.
type Provider struct {
	Root     string
	Fallback fs.FS
}

var ErrInvalidViewPath = errors.New("invalid view path")

func (p Provider) Template(_ context.Context, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" || !fs.ValidPath(name) || path.Ext(name) != ".html" {
		return nil, fmt.Errorf("%q: %w", name, ErrInvalidViewPath)
	}

	if p.Root != "" {
		safePath, err := secureJoin(p.Root, filepath.FromSlash(name))
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(safePath)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if p.Fallback != nil {
		b, err := fs.ReadFile(p.Fallback, name)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("view %q: %w", name, ports.ErrNotFound)
}

func secureJoin(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", ErrInvalidViewPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidViewPath
	}
	return target, nil
}
