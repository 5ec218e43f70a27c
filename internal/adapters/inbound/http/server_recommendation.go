package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
)

func (api MixbyServer) PostRecommendation(w http.ResponseWriter, r *http.Request) {
	var body RecommendationRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	rec, err := api.GenerateRecommendationUseCase.Execute(r.Context(), usecases.RecommendationRequest{
		Kind:         domain.RecommendationKind(r.PathValue("kind")),
		Persona:      body.Persona,
		CocktailList: body.CocktailList,
		Conditions: domain.Conditions{
			Season:    body.Season,
			TimeOfDay: body.Time,
			Weather:   body.Weather,
		},
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendation(rec))
}
