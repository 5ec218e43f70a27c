package app

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "RETRIEVAL_TOP_K", UsedDefault: true},
			{Key: "HTTP_PORT", UsedDefault: true},
			{Key: "DB_HOST", UsedDefault: false},
			{Key: "HTTP_PORT", UsedDefault: true},
		},
	}

	err := MermaidGraphIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	graph, err := depend.ResolveNamed[string](common.IntrospectionGraphKey)
	require.NoError(t, err)
	assert.NotEmpty(t, graph)

	defaults, err := depend.ResolveNamed[[]string](common.IntrospectionDefaultsKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"HTTP_PORT", "RETRIEVAL_TOP_K"}, defaults)
}

func TestDefaultedConfigKeys(t *testing.T) {
	tests := map[string]struct {
		configs  []introspection.ConfigAccess
		expected []string
	}{
		"empty-report": {
			expected: []string{},
		},
		"all-explicit": {
			configs:  []introspection.ConfigAccess{{Key: "DB_USER"}, {Key: "DB_PASS"}},
			expected: []string{},
		},
		"mixed": {
			configs: []introspection.ConfigAccess{
				{Key: "PUBSUB_TOPIC_ID", UsedDefault: true},
				{Key: "DB_USER"},
				{Key: "EMBEDDING_MODEL", UsedDefault: true},
			},
			expected: []string{"EMBEDDING_MODEL", "PUBSUB_TOPIC_ID"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := defaultedConfigKeys(introspection.Report{Configs: tt.configs})
			assert.Equal(t, tt.expected, got)
		})
	}
}
