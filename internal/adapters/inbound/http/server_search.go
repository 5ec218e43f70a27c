package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
)

func (api MixbyServer) SearchCocktails(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	n := usecases.DefaultSearchResults
	if raw := params.Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, badRequest("n must be an integer"))
			return
		}
		n = parsed
	}

	useMMR := false
	if raw := params.Get("mmr"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, badRequest("mmr must be a boolean"))
			return
		}
		useMMR = parsed
	}

	// A present but blank codes parameter still restricts the search.
	var codes []string
	if params.Has("codes") {
		codes = strings.Split(params.Get("codes"), ",")
	}

	items, err := api.SearchCatalogUseCase.Query(r.Context(), params.Get("q"), n, codes, useMMR)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := SearchResp{Items: make([]SearchItem, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toSearchItem(item))
	}
	respondJSON(w, http.StatusOK, resp)
}
