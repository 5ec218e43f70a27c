package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestIntrospectHandler(t *testing.T) {
	tests := map[string]struct {
		register      func()
		expectedCode  int
		expectedType  string
		shouldContain []string
		shouldSkip    []string
	}{
		"graph-and-defaults": {
			register: func() {
				depend.RegisterNamed("graph TD;\nA-->B;", common.IntrospectionGraphKey)
				depend.RegisterNamed([]string{"HTTP_PORT", "RETRIEVAL_TOP_K"}, common.IntrospectionDefaultsKey)
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<title>Mixby wiring</title>",
				"<li><code>HTTP_PORT</code></li>",
				"<li><code>RETRIEVAL_TOP_K</code></li>",
				`mermaid.render('mixby-graph', "graph TD;\nA--\u003eB;")`,
			},
			shouldSkip: []string{"Every config key was set explicitly."},
		},
		"graph-without-defaults": {
			register: func() {
				depend.RegisterNamed("graph TD;", common.IntrospectionGraphKey)
			},
			expectedCode:  http.StatusOK,
			expectedType:  "text/html; charset=utf-8",
			shouldContain: []string{"Every config key was set explicitly."},
			shouldSkip:    []string{"<li><code>"},
		},
		"missing-graph": {
			register:      func() {},
			expectedCode:  http.StatusInternalServerError,
			expectedType:  "text/plain; charset=utf-8",
			shouldContain: []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)
			tt.register()

			w := httptest.NewRecorder()
			IntrospectHandler(w, httptest.NewRequest(http.MethodGet, "/introspect", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
			body := w.Body.String()
			for _, s := range tt.shouldContain {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.shouldSkip {
				assert.NotContains(t, body, s)
			}
		})
	}
}
