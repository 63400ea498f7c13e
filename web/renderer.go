// Package web holds the embedded server-side templates and the echo
// renderer over them.
package web

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	t := template.New("").Funcs(template.FuncMap{
		"fmtTime": func(ts time.Time) string {
			return ts.Format("Jan 2, 2006 15:04")
		},
	})
	return &Renderer{
		templates: template.Must(t.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
