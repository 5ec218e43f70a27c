package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS    embed.FS
	introspectTpl = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title    string
	Graph    string
	Defaults []string
}

// IntrospectHandler renders the dependency graph of the running app together with
// the config keys that were left on their defaults.
func IntrospectHandler(w http.ResponseWriter, _ *http.Request) {
	graph, err := depend.ResolveNamed[string](common.IntrospectionGraphKey)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	// absent when the app was wired without the introspector report
	defaults, _ := depend.ResolveNamed[[]string](common.IntrospectionDefaultsKey)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := introspectPage{Title: "Mixby wiring", Graph: graph, Defaults: defaults}
	if err := introspectTpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
