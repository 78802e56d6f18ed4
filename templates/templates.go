// Package templates embeds the HTML views so the binary does not depend on
// its working directory.
package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed layouts/*.html components/*.html pages/*.html
var files embed.FS

// Parse builds the template set for one page: the base layout, the shared
// components and pages/<page>. Render it with ExecuteTemplate(w, "base", data).
func Parse(page string, funcs template.FuncMap) (*template.Template, error) {
	tmpl, err := template.New(page).Funcs(funcs).ParseFS(files,
		"layouts/base.html",
		"components/*.html",
		"pages/"+page,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
	}
	return tmpl, nil
}
