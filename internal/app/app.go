package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/catalog"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/retrieval"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
)

// NewMixbyApp creates the full Mixby application backed by Postgres, Vault and Pub/Sub.
func NewMixbyApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitVectorIndex{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitLLMClient{},
			&modelrunner.InitEmbeddingClient{},
			&catalog.InitCatalog{},
			&retrieval.InitEmbeddingCache{},
			&retrieval.InitRetriever{},

			&usecases.InitRebuildIndex{},
			&usecases.InitSearchCatalog{},
			&usecases.InitGenerateRecommendation{},
			&usecases.InitGeneratePersona{},
			&usecases.InitRefreshCatalog{},
		).
		Host(
			&http.MixbyServer{},
			&workers.CatalogEventSubscriber{},
			&workers.CatalogWatcher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewStandaloneMixbyApp creates a single-process Mixby application.
// The vector index lives in memory and catalog changes are applied without a broker.
func NewStandaloneMixbyApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&memory.InitVectorIndex{},
			&time.InitCurrentTimeProvider{},
			&modelrunner.InitLLMClient{},
			&modelrunner.InitEmbeddingClient{},
			&catalog.InitCatalog{},
			&retrieval.InitEmbeddingCache{},
			&retrieval.InitRetriever{},

			&usecases.InitRebuildIndex{},
			&usecases.InitSearchCatalog{},
			&usecases.InitGenerateRecommendation{},
			&usecases.InitGeneratePersona{},
			&usecases.InitRefreshCatalog{},
			&usecases.InitInProcessCatalogEvents{},
		).
		Host(
			&http.MixbyServer{},
			&workers.CatalogWatcher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
