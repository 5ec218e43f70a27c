package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMixbyServer_PostRebuildIndex(t *testing.T) {
	tests := map[string]struct {
		query           string
		setExpectations func(*mocks.MockRebuildIndex)
		expectedStatus  int
		expectedBody    *RebuildResp
		expectedError   *ErrorResp
	}{
		"skipped": {
			setExpectations: func(m *mocks.MockRebuildIndex) {
				m.EXPECT().Execute(mock.Anything, false).Return(usecases.RebuildResult{Count: 42}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &RebuildResp{Rebuilt: false, Count: 42},
		},
		"forced": {
			query: "?force=true",
			setExpectations: func(m *mocks.MockRebuildIndex) {
				m.EXPECT().Execute(mock.Anything, true).Return(usecases.RebuildResult{Rebuilt: true, Count: 40}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &RebuildResp{Rebuilt: true, Count: 40},
		},
		"invalid-force": {
			query:          "?force=yes-please",
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "force must be a boolean"}},
		},
		"rebuild-error": {
			query: "?force=1",
			setExpectations: func(m *mocks.MockRebuildIndex) {
				m.EXPECT().Execute(mock.Anything, true).Return(usecases.RebuildResult{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRebuild := mocks.NewMockRebuildIndex(t)
			if tt.setExpectations != nil {
				tt.setExpectations(mockRebuild)
			}

			server := MixbyServer{
				RebuildIndexUseCase: mockRebuild,
				Logger:              log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/vector-index/rebuild"+tt.query, nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response RebuildResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}

func TestMixbyServer_PostReloadCatalog(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(*mocks.MockRefreshCatalog)
		expectedStatus  int
		expectedBody    *RebuildResp
		expectedError   *ErrorResp
	}{
		"success": {
			setExpectations: func(m *mocks.MockRefreshCatalog) {
				m.EXPECT().Execute(mock.Anything).Return(usecases.RebuildResult{Rebuilt: true, Count: 41}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &RebuildResp{Rebuilt: true, Count: 41},
		},
		"invalid-catalog": {
			setExpectations: func(m *mocks.MockRefreshCatalog) {
				m.EXPECT().Execute(mock.Anything).
					Return(usecases.RebuildResult{}, domain.NewValidationErr("entry 3: id is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "entry 3: id is required"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockRefresh := mocks.NewMockRefreshCatalog(t)
			tt.setExpectations(mockRefresh)

			server := MixbyServer{
				RefreshCatalogUseCase: mockRefresh,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/reload", nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response RebuildResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}

func TestMixbyServer_Routes(t *testing.T) {
	tests := map[string]struct {
		method         string
		path           string
		expectedStatus int
	}{
		"healthz":                 {method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		"unknown-route":           {method: http.MethodGet, path: "/api/v1/todos", expectedStatus: http.StatusNotFound},
		"wrong-method-for-search": {method: http.MethodPost, path: "/api/v1/cocktails/search", expectedStatus: http.StatusMethodNotAllowed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			MixbyServer{}.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
