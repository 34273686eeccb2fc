package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/croylabs/dhcpwire/internal/config"
	"github.com/croylabs/dhcpwire/internal/observability"
	"github.com/croylabs/dhcpwire/internal/server"
)

func main() {
	configPath := flag.String("config", "dhcpwired.toml", "path to the daemon config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		observability.InitLogger("dhcpwired", "info")
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("dhcpwired", cfg.LogLevel)
	log.Info().Str("path", *configPath).Str("node", cfg.Name).Msg("loaded config")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	admin := server.AdminRouter(cfg.Name, log.Logger)
	go func() {
		if err := admin.Run(cfg.AdminAddr); err != nil {
			log.Fatal().Err(err).Msg("admin server stopped")
		}
	}()

	srv := server.New(cfg, log.Logger, nil)
	log.Info().Str("listen", cfg.ListenAddr).Str("admin", cfg.AdminAddr).Msg("dhcpwired started")
	if err := srv.Serve(ctx); err != nil {
		log.Fatal().Err(err).Msg("listener stopped")
	}
	log.Info().Msg("dhcpwired stopped")
}
