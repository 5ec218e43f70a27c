package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
)

func (api MixbyServer) PostPersona(w http.ResponseWriter, r *http.Request) {
	var body PersonaRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}
	if len(body.UserData) == 0 {
		respondError(w, badRequest("user_data must be a non-empty list"))
		return
	}
	if body.TastingData == nil {
		respondError(w, badRequest("tasting_data must be a list"))
		return
	}

	persona, err := api.GeneratePersonaUseCase.Execute(r.Context(), toPersonaRequest(body))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, PersonaResp{
		Persona:         persona.Summary,
		MatchedTastings: persona.MatchedNotes,
		SkippedCodes:    persona.SkippedCodes,
		Model:           persona.Model,
	})
}

func toPersonaRequest(body PersonaRequestBody) usecases.PersonaRequest {
	user := body.UserData[0]
	req := usecases.PersonaRequest{
		Profile: domain.UserProfile{
			Name:          user.Name,
			Gender:        user.Gender,
			FavoriteTaste: user.FavoriteTaste,
		},
		Tastings: make([]domain.TastingNote, 0, len(*body.TastingData)),
	}
	for _, t := range *body.TastingData {
		req.Tastings = append(req.Tastings, domain.TastingNote{
			Code:      string(t.Code),
			DrinkDate: t.DrinkDate,
			Overall:   domain.Rating(t.Eval),
			Sweetness: domain.Rating(t.Sweetness),
			Sourness:  domain.Rating(t.Sourness),
			Alcohol:   domain.Rating(t.Alcohol),
		})
	}
	return req
}
