package app

import (
	"context"
	"slices"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector publishes the wiring report of a Mixby app for the /introspect page:
// the dependency graph in Mermaid syntax and the config keys still running on their defaults.
type MermaidGraphIntrospector struct{}

func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), common.IntrospectionGraphKey)
	depend.RegisterNamed(defaultedConfigKeys(r), common.IntrospectionDefaultsKey)
	return nil
}

// defaultedConfigKeys returns the sorted, de-duplicated keys resolved from struct tag defaults.
func defaultedConfigKeys(r introspection.Report) []string {
	keys := []string{}
	for _, c := range r.Configs {
		if c.UsedDefault && !slices.Contains(keys, c.Key) {
			keys = append(keys, c.Key)
		}
	}
	slices.Sort(keys)
	return keys
}
