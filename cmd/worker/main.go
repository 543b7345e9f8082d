// Package main runs a demo differential worker. It registers a small
// service against the control plane and processes jobs until interrupted,
// draining in-flight handlers before exiting.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/differentialHQ/differential/pkg/sdk"
)

type greetArgs struct {
	Name string `msgpack:"name"`
}

type addArgs struct {
	A int `msgpack:"a"`
	B int `msgpack:"b"`
}

func main() {
	endpoint := os.Getenv("DIFFERENTIAL_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:4000"
	}
	concurrency := 0
	if v := os.Getenv("DIFFERENTIAL_WORKER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	client, err := sdk.New(sdk.Options{
		Endpoint:    endpoint,
		Concurrency: concurrency,
		// APISecret and DeploymentID come from the environment.
	})
	if err != nil {
		slog.Error("sdk client init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Close()

	svc := client.Service("demo")
	err = svc.Register("greet", func(_ context.Context, args sdk.Args) (any, error) {
		var in greetArgs
		if err := args.Decode(&in); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = "world"
		}
		return map[string]string{"greeting": "hello " + name}, nil
	})
	if err != nil {
		slog.Error("function registration failed", slog.Any("error", err))
		os.Exit(1)
	}
	err = svc.Register("add", func(_ context.Context, args sdk.Args) (any, error) {
		var in addArgs
		if err := args.Decode(&in); err != nil {
			return nil, err
		}
		return map[string]int{"sum": in.A + in.B}, nil
	}, sdk.WithRateLimit("minute", 120))
	if err != nil {
		slog.Error("function registration failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		slog.Info("signal received, draining worker", slog.String("signal", sig.String()))
		cancel()
	}()

	slog.Info("worker polling",
		slog.String("endpoint", endpoint),
		slog.String("service", "demo"),
		slog.String("machine_id", client.MachineID()))
	if err := svc.Start(ctx); err != nil {
		slog.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("worker drained and stopped")
}
