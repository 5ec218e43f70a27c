package integration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

const depsComposeFile = "../../docker-compose.deps.yml"

// readinessLogs maps every service of the deps compose file to the log line it prints once it serves traffic.
// vault-seed is a one-shot job and is left to compose.Wait.
var readinessLogs = map[string]string{
	"postgres": "database system is ready to accept connections",
	"vault":    "Vault server started!",
	"pubsub":   "Server started, listening on",
}

// InitDockerCompose brings up Postgres with pgvector, Vault and the Pub/Sub emulator
// for the lifetime of the integration suite.
type InitDockerCompose struct {
	StartupTimeout time.Duration
	stack          *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	stack, err := compose.NewDockerCompose(depsComposeFile)
	if err != nil {
		return ctx, fmt.Errorf("failed to load %s: %w", depsComposeFile, err)
	}
	i.stack = stack

	timeout := i.StartupTimeout
	if timeout == 0 {
		timeout = 3 * time.Minute
	}

	for service, line := range readinessLogs {
		stack.WaitForService(service, wait.NewLogStrategy(line).WithStartupTimeout(timeout))
	}

	if err := stack.Up(ctx, compose.Wait(true)); err != nil {
		return ctx, fmt.Errorf("failed to start mixby dependencies: %w", err)
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.stack == nil {
		return
	}
	downCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := i.stack.Down(
		downCtx,
		compose.RemoveOrphans(true),
		compose.RemoveVolumes(true),
		compose.RemoveImages(compose.RemoveImagesLocal),
	); err != nil {
		log.Printf("failed to stop mixby dependencies: %v", err)
	}
}
