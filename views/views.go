// Package views holds the embedded HTML templates and the gin renderer that
// executes each page inside the shared layout.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var files embed.FS

const (
	root          = "templates/"
	layoutFile    = root + "base.html"
	layoutName    = "base"
	partialSuffix = ".partial.html"
)

// Renderer implements gin's render.HTMLRender with one template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func New() (*Renderer, error) {
	r := &Renderer{templates: map[string]*template.Template{}}

	// Partials are parsed into every page so forms can share field blocks.
	var partials []string
	for _, pattern := range []string{root + "*" + partialSuffix, root + "*/*" + partialSuffix} {
		matches, err := fs.Glob(files, pattern)
		if err != nil {
			return nil, err
		}
		partials = append(partials, matches...)
	}

	err := fs.WalkDir(files, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == layoutFile || !strings.HasSuffix(path, ".html") || strings.HasSuffix(path, partialSuffix) {
			return nil
		}

		name := strings.TrimPrefix(path, root)
		patterns := append([]string{layoutFile, path}, partials...)
		tmpl, err := template.New(name).ParseFS(files, patterns...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		panic(fmt.Sprintf("views: unknown page %q", name))
	}
	return render.HTML{Template: tmpl, Name: layoutName, Data: data}
}

// pages lists the page names that can be passed to c.HTML.
func (r *Renderer) pages() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
