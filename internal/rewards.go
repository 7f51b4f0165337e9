package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/rewards/internal/app/rewards"
	"github.com/ormanli/rewards/internal/infra/logging"
	"github.com/ormanli/rewards/internal/infra/metrics"
	"github.com/ormanli/rewards/internal/infra/seed"
	"github.com/ormanli/rewards/internal/infra/store/memory"
	"github.com/ormanli/rewards/internal/infra/store/redisstore"
	"github.com/ormanli/rewards/internal/infra/transport/tcp"
)

type store interface {
	rewards.AccountRepository
	rewards.RestaurantRepository
	rewards.RewardRepository
	seed.Seeder
}

// Run starts application with the passed configuration.
func Run(ctx context.Context, cfg rewards.Config) error {
	logging.Setup(cfg)

	ctx, cncl := context.WithCancel(ctx)
	defer cncl()

	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	fixtures, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}

	err = seed.Apply(ctx, s, fixtures)
	if err != nil {
		return err
	}

	registry := metrics.NewRegistry()
	clk := clock.New()

	network := rewards.NewInstrumentedNetwork(
		rewards.NewValidationNetwork(rewards.NewNetwork(s, s, s)),
		metrics.New(registry),
		clk,
	)

	metricsErr := make(chan error, 1)
	if cfg.MetricsEnabled {
		metricsServer := metrics.NewServer(cfg.ServerHost, cfg.MetricsPort, cfg.MetricsPath, registry)
		go func() {
			err := metricsServer.Start(ctx)
			if err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
			metricsErr <- err
		}()
	} else {
		metricsErr <- nil
	}

	tcpTransport := tcp.NewTransport(cfg, network, clk)

	err = tcpTransport.Start(ctx)
	if err != nil {
		return err
	}

	return <-metricsErr
}

func openStore(ctx context.Context, cfg rewards.Config) (store, func(), error) {
	switch cfg.StoreBackend {
	case rewards.StoreBackendMemory:
		return memory.NewStore(), func() {}, nil
	case rewards.StoreBackendRedis:
		client, err := redisstore.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		return redisstore.NewStore(client), func() {
			if err := client.Close(); err != nil {
				slog.Error("Error closing redis client", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
