package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) ErrorResp {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		generationErr *domain.GenerationErr
	)

	errResp := ErrorResp{}
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &generationErr):
		errResp.Error.Code = BADGATEWAY
		errResp.Error.Message = "text generation failed"
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: BADREQUEST, Message: message}}
}

func toRecommendation(rec domain.Recommendation) RecommendationResp {
	resp := RecommendationResp{
		Id:               openapi_types.UUID(rec.ID),
		Kind:             string(rec.Kind),
		Grounding:        string(rec.Grounding),
		UngroundedReason: rec.UngroundedReason,
		Model:            rec.Model,
		GeneratedAt:      rec.GeneratedAt,
		Recommendation:   make([]RecommendationItem, 0, len(rec.Items)),
	}
	for _, item := range rec.Items {
		resp.Recommendation = append(resp.Recommendation, RecommendationItem{
			Context:     item.Context,
			Name:        item.Name,
			Tag:         item.Tag,
			Reason:      item.Reason,
			Code:        item.CatalogID,
			Matched:     item.Matched,
			MatchMethod: string(item.MatchMethod),
		})
	}
	return resp
}

func toSearchItem(item domain.RetrievedItem) SearchItem {
	return SearchItem{
		Code:            item.Metadata.Code,
		KoreanName:      item.Metadata.KoreanName,
		EnglishName:     item.Metadata.EnglishName,
		Tag1:            item.Metadata.Tag1,
		Tag2:            item.Metadata.Tag2,
		SimilarityScore: item.Similarity,
	}
}
