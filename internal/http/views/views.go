// Package views holds the server-rendered HTML pages.
package views

import (
	"embed"
	"html/template"

	"travelbook/internal/utils"
)

//go:embed templates/*.html
var files embed.FS

// Funcs are available to every template.
var Funcs = template.FuncMap{
	"cents":    utils.FormatCents,
	"datetime": utils.FormatDateTime,
	"date":     utils.FormatDate,
}

// Load parses every page and the shared layout.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
}
