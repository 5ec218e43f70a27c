package config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newVaultServer serves a KV v2 secret at secret/data/mixby and counts reads.
func newVaultServer(t *testing.T, data map[string]any) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var reads atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/mixby" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
			return
		}
		reads.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"data":     data,
				"metadata": map[string]any{"version": 1},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server, &reads
}

func TestVaultProvider_Get(t *testing.T) {
	server, reads := newVaultServer(t, map[string]any{
		"LLM_API_KEY": "secret-key",
		"DB_PORT":     5432,
	})

	vp, err := NewVaultProvider(server.URL, "root", "secret", "mixby")
	require.NoError(t, err)

	tests := map[string]struct {
		key         string
		expected    string
		expectedErr string
	}{
		"string-value": {
			key:      "LLM_API_KEY",
			expected: "secret-key",
		},
		"missing-key": {
			key:         "DB_PASS",
			expectedErr: "vault secret mixby does not contain key DB_PASS",
		},
		"non-string-value": {
			key:         "DB_PORT",
			expectedErr: "vault secret DB_PORT is not a string",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Equal(t, int32(1), reads.Load())
}

func TestVaultProvider_Get_SecretNotFound(t *testing.T) {
	server, _ := newVaultServer(t, nil)

	vp, err := NewVaultProvider(server.URL, "root", "secret", "other")
	require.NoError(t, err)

	_, err = vp.Get(context.Background(), "LLM_API_KEY")
	assert.Error(t, err)
}

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mountPath, secretPath string
		expectedErr                          error
	}{
		"missing-server": {
			token: "t", mountPath: "secret", secretPath: "mixby",
			expectedErr: domain.NewConfigurationErr("VAULT_ADDR is required"),
		},
		"missing-token": {
			server: "http://vault:8200", mountPath: "secret", secretPath: "mixby",
			expectedErr: domain.NewConfigurationErr("VAULT_TOKEN is required"),
		},
		"missing-mount-path": {
			server: "http://vault:8200", token: "t", secretPath: "mixby",
			expectedErr: domain.NewConfigurationErr("VAULT_MOUNT_PATH is required"),
		},
		"missing-secret-path": {
			server: "http://vault:8200", token: "t", mountPath: "secret",
			expectedErr: domain.NewConfigurationErr("VAULT_SECRET_PATH is required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mountPath, tt.secretPath)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	_, err := InitVaultProvider{}.Initialize(context.Background())
	var cfgErr *domain.ConfigurationErr
	assert.ErrorAs(t, err, &cfgErr)
}
