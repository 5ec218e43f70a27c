package http

import (
	"net/http"
	"strconv"
)

func (api MixbyServer) PostRebuildIndex(w http.ResponseWriter, r *http.Request) {
	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, badRequest("force must be a boolean"))
			return
		}
		force = parsed
	}

	result, err := api.RebuildIndexUseCase.Execute(r.Context(), force)
	if err != nil {
		api.Logger.Printf("MixbyServer: vector index rebuild failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, RebuildResp{Rebuilt: result.Rebuilt, Count: result.Count})
}

func (api MixbyServer) PostReloadCatalog(w http.ResponseWriter, r *http.Request) {
	result, err := api.RefreshCatalogUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("MixbyServer: catalog reload failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, RebuildResp{Rebuilt: result.Rebuilt, Count: result.Count})
}
