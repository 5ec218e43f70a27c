package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read once and served from memory afterwards.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	secret     *secretCache
}

type secretCache struct {
	mu   sync.Mutex
	data map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "mixby").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	required := []struct{ name, value string }{
		{"VAULT_ADDR", server},
		{"VAULT_TOKEN", token},
		{"VAULT_MOUNT_PATH", mountPath},
		{"VAULT_SECRET_PATH", secretPath},
	}
	for _, r := range required {
		if r.value == "" {
			return VaultProvider{}, domain.NewConfigurationErr(r.name + " is required")
		}
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		secret:     &secretCache{},
	}, nil
}

// Get retrieves a configuration value from Vault.
// Returns an error if the secret or key is not found.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}

	return strValue, nil
}

// load fetches the secret on first use. Failed reads are retried on the next call.
func (vp VaultProvider) load(ctx context.Context) (map[string]any, error) {
	vp.secret.mu.Lock()
	defer vp.secret.mu.Unlock()

	if vp.secret.data != nil {
		return vp.secret.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.secret.data = secret.Data
	return vp.secret.data, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR"`
	Token      string `config:"VAULT_TOKEN"`
	MountPath  string `config:"VAULT_MOUNT_PATH"`
	SecretPath string `config:"VAULT_SECRET_PATH"`
}

// Initialize sets up the VaultProvider and registers it in a composite provider as a global config provider.
// Environment variables take precedence over Vault values.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
