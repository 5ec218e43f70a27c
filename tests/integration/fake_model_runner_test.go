//go:build integration

package integration

import (
	"encoding/json"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"strings"
)

const fakeEmbeddingDims = 16

// newFakeModelRunner serves the OpenAI-compatible routes the application calls.
// Embeddings are derived from word hashes so similar texts land close together.
// Recommendation answers always name one catalog cocktail, one cocktail in a different case
// and one cocktail the catalog does not have. Persona prompts get a fixed summary.
func newFakeModelRunner() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
			Input any    `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var inputs []string
		switch in := req.Input.(type) {
		case string:
			inputs = []string{in}
		case []any:
			for _, v := range in {
				s, _ := v.(string)
				inputs = append(inputs, s)
			}
		}

		data := make([]map[string]any, len(inputs))
		for i, text := range inputs {
			data[i] = map[string]any{"object": "embedding", "index": i, "embedding": hashEmbedding(text)}
		}
		writeJSON(w, map[string]any{
			"object": "list",
			"model":  req.Model,
			"data":   data,
			"usage":  map[string]int{"prompt_tokens": len(inputs), "total_tokens": len(inputs)},
		})
	})

	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		answer := `{"recommendation":[` +
			`{"name":"Mojito","tag":"minty","reason":"fresh for the moment"},` +
			`{"name":"negroni","tag":"bitter","reason":"slow sipping"},` +
			`{"name":"Moonlight Fizz","tag":"bubbly","reason":"something new"}]}`
		if len(req.Messages) > 0 && strings.Contains(req.Messages[0].Content, `{"summary":`) {
			answer = `{"summary":"fresh and minty drinker"}`
		}
		writeJSON(w, map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "fake-llm",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": answer},
			}},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 60, "total_tokens": 180},
		})
	})

	return httptest.NewServer(mux)
}

func hashEmbedding(text string) []float64 {
	vec := make([]float64, fakeEmbeddingDims)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(word)) //nolint:errcheck
		vec[h.Sum32()%fakeEmbeddingDims]++
	}
	vec[0] += 0.01
	return vec
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
