package api

import (
	"embed"         // Compiled-in page templates
	"fmt"           // Value formatting
	"html/template" // Page rendering
	"strings"       // Label formatting
	"time"          // Date formatting

	"fitness_tracker/internal/fitness" // Date layout
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.In(time.Local).Format(fitness.DateLayout)
	},
	"label": label,
}

// Templates parses the embedded pages; each page is addressed by file name
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

// label turns identifiers like "lose_weight" into "Lose weight"
func label(v any) string {
	s := strings.ReplaceAll(fmt.Sprint(v), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
