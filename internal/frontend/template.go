package frontend

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var templateFS embed.FS

const viewsPattern = "views/*.html"

// Template adapts html/template to echo's Renderer.
type Template struct {
	templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

var templateFuncs = template.FuncMap{
	"partName": func(part int) string {
		if part == 2 {
			return "Two"
		}
		return "One"
	},
	"duration": func(d time.Duration) string {
		return d.Round(time.Microsecond).String()
	},
	"timestamp": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04:05")
	},
	"dayFile": func(day int) string {
		return fmt.Sprintf("day%02d.txt", day)
	},
}

func newTemplate() *Template {
	return &Template{
		templates: template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, viewsPattern)),
	}
}
