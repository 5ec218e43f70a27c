//go:build integration

package integration

import (
	"context"
	"os"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}

// initPubSubTopology creates the catalog events topic and subscription on the emulator.
type initPubSubTopology struct {
	projectID      string
	topicID        string
	subscriptionID string
}

func (i *initPubSubTopology) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.projectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: "projects/" + i.projectID + "/topics/" + i.topicID,
	})
	if err != nil {
		return ctx, err
	}

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + i.projectID + "/subscriptions/" + i.subscriptionID,
		Topic: topic.GetName(),
	})
	return ctx, err
}
