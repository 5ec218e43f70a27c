package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
	"github.com/rs/cors"
)

// MixbyServer is the REST API HTTP server for the Mixby application.
type MixbyServer struct {
	Port                          int                             `config:"HTTP_PORT" default:"8080"`
	Logger                        *log.Logger                     `resolve:""`
	GenerateRecommendationUseCase usecases.GenerateRecommendation `resolve:""`
	GeneratePersonaUseCase        usecases.GeneratePersona        `resolve:""`
	SearchCatalogUseCase          usecases.SearchCatalog          `resolve:""`
	RebuildIndexUseCase           usecases.RebuildIndex           `resolve:""`
	RefreshCatalogUseCase         usecases.RefreshCatalog         `resolve:""`
}

// Handler builds the routed HTTP handler of the API.
func (api MixbyServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)
	mux.HandleFunc("GET /healthz", api.GetHealth)

	mux.HandleFunc("POST /api/v1/recommendations/persona", api.PostPersona)
	mux.HandleFunc("POST /api/v1/recommendations/{kind}", api.PostRecommendation)
	mux.HandleFunc("GET /api/v1/cocktails/search", api.SearchCocktails)
	mux.HandleFunc("POST /api/v1/admin/vector-index/rebuild", api.PostRebuildIndex)
	mux.HandleFunc("POST /api/v1/admin/catalog/reload", api.PostReloadCatalog)

	h := telemetry.Middleware("mixby-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the MixbyServer.
func (api MixbyServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("MixbyServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("MixbyServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("MixbyServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the MixbyServer is ready by performing a health check.
func (api MixbyServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (api MixbyServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{Status: "ok"})
}
