package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProjectID = "mixby-test"

// newCatalogTopic starts an in-memory Pub/Sub server holding one topic with one subscription
// and returns a client bound to it plus the full topic name.
func newCatalogTopic(t *testing.T, ctx context.Context, topicID, subscriptionID string) (*pubsubV2.Client, string) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(ctx, testProjectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	topicName := fmt.Sprintf("projects/%s/topics/%s", testProjectID, topicID)
	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	require.NoError(t, err)

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  fmt.Sprintf("projects/%s/subscriptions/%s", testProjectID, subscriptionID),
		Topic: topicName,
	})
	require.NoError(t, err)

	return client, topicName
}

// publishPayloads publishes each payload and blocks until the server acknowledged it.
func publishPayloads(ctx context.Context, client *pubsubV2.Client, topicName string, payloads [][]byte) error {
	publisher := client.Publisher(topicName)
	defer publisher.Stop()

	for i, payload := range payloads {
		if _, err := publisher.Publish(ctx, &pubsubV2.Message{Data: payload}).Get(ctx); err != nil {
			return fmt.Errorf("payload %d: %w", i, err)
		}
	}
	return nil
}

// startWorker runs w in the background. The returned channel receives the Run error once it exits.
func startWorker(ctx context.Context, w symbiont.Runnable) (context.CancelFunc, <-chan error) {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(runCtx)
	}()
	return cancel, done
}

// waitWorkerStop fails the test when the worker does not exit cleanly within a second.
func waitWorkerStop(t *testing.T, done <-chan error) {
	t.Helper()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not shut down in time")
	}
}

// waitSignals blocks until want signals arrived on ch, failing when a single wait exceeds timeout.
func waitSignals(t *testing.T, ch <-chan struct{}, want int, timeout time.Duration) {
	t.Helper()

	for got := 0; got < want; got++ {
		select {
		case <-ch:
		case <-time.After(timeout):
			t.Fatalf("timeout waiting for signals; got %d of %d", got, want)
		}
	}
}

func catalogEventPayload(t *testing.T, event domain.CatalogEvent) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}
