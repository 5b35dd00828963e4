package renderer

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// parsed holds one *template.Template per TemplateName. Templates are
// immutable once parsed, so concurrent Render calls share them.
var parsed sync.Map

// lookup returns the parsed template for name, parsing it on first use.
// Parse failures are not cached.
func lookup(name TemplateName) (*template.Template, error) {
	if t, ok := parsed.Load(name); ok {
		return t.(*template.Template), nil
	}

	path := "templates/" + string(name)
	t, err := template.New(string(name)).
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, path)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", path, err)
	}

	// another goroutine may have won the race; keep whichever was stored first
	actual, _ := parsed.LoadOrStore(name, t)
	return actual.(*template.Template), nil
}

// Render executes the named embedded template with data.
func Render(name TemplateName, data any) (string, error) {
	t, err := lookup(name)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := t.Execute(&out, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}
	return out.String(), nil
}

// MustRender is Render for callers inside construct constructors, where a
// broken embedded template is a programming error.
func MustRender(name TemplateName, data any) string {
	out, err := Render(name, data)
	if err != nil {
		panic(err)
	}
	return out
}
