package pubsub

import (
	"context"
	"io"
	"log"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestNewClient(t *testing.T) {
	server := pstest.NewServer()
	defer server.Close() //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close() //nolint:errcheck

	tests := map[string]struct {
		projectID   string
		expectedErr error
	}{
		"success": {
			projectID: "test-project",
		},
		"missing-project": {
			expectedErr: domain.NewConfigurationErr("PUBSUB_PROJECT_ID is required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tt.projectID, option.WithGRPCConn(conn))
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, client)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestInitClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	server := pstest.NewServer()
	defer server.Close() //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	assert.NoError(t, err)
	ctx := context.Background()
	client, err := pubsubV2.NewClient(
		ctx,
		"test-project",
		option.WithGRPCConn(conn),
	)
	assert.NoError(t, err)

	init := &InitClient{
		Logger: log.New(io.Discard, "", 0),
		client: client,
	}

	_, err = init.Initialize(ctx)
	assert.NoError(t, err)

	_, err = depend.Resolve[*pubsubV2.Client]()
	assert.NoError(t, err)

	init.Close()
}
