package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
)

//go:embed templates/*.html
var embedded embed.FS

const layoutFile = "layout.html"

// Renderer executes page templates inside the shared layout.
// With a reload directory set, templates are parsed from disk on every
// render; otherwise the embedded copies are parsed once by New.
type Renderer struct {
	reloadDir string
	pages     map[string]*template.Template
}

// New returns a Renderer over the embedded templates, or over reloadDir
// when it is non-empty.
func New(reloadDir string) (*Renderer, error) {
	r := &Renderer{reloadDir: reloadDir}
	if reloadDir != "" {
		info, err := os.Stat(reloadDir)
		if err != nil {
			return nil, &TemplateError{Page: reloadDir, Message: "templates directory not found", Cause: err}
		}
		if !info.IsDir() {
			return nil, &TemplateError{Page: reloadDir, Message: "templates path is not a directory"}
		}
		return r, nil
	}

	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, &TemplateError{Page: "templates", Message: "failed to open embedded templates", Cause: err}
	}
	pages, err := parseAll(sub)
	if err != nil {
		return nil, err
	}
	r.pages = pages
	return r, nil
}

// Reloading reports whether templates are read from disk on each render.
func (r *Renderer) Reloading() bool {
	return r.reloadDir != ""
}

// Render executes page with data into w. Output is buffered so a failed
// execution never writes a partial page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, err := r.lookup(page)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return &TemplateError{Page: page, Message: "failed to execute template", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s page: %w", page, err)
	}
	return nil
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	if r.reloadDir != "" {
		return parsePage(os.DirFS(r.reloadDir), page)
	}
	tmpl, ok := r.pages[page]
	if !ok {
		return nil, &TemplateError{Page: page, Message: "unknown page"}
	}
	return tmpl, nil
}

func parseAll(fsys fs.FS) (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		tmpl, err := parsePage(fsys, page)
		if err != nil {
			return nil, err
		}
		pages[page] = tmpl
	}
	return pages, nil
}

// parsePage parses the layout together with a single page so each page can
// define its own "content" block.
func parsePage(fsys fs.FS, page string) (*template.Template, error) {
	tmpl, err := template.New(page).Funcs(funcs).ParseFS(fsys, layoutFile, page+".html")
	if err != nil {
		return nil, &TemplateError{Page: page, Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}
