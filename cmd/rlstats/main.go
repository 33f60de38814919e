package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"rlstats"
	"rlstats/internal/config"
	"rlstats/internal/logger"

	"github.com/rs/zerolog"
)

const requestTimeout = 30 * time.Second

func main() {
	player := flag.String("player", "", "unique player ID to look up; lists platforms when empty")
	platform := flag.Int("platform", 1, "platform ID (1 Steam, 2 PS4, 3 XboxOne)")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		log = logger.SetLevel(level)
	}

	client, err := rlstats.New(cfg.APIKey, rlstats.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if *player == "" {
		listPlatforms(ctx, log, client)
		return
	}
	lookupPlayer(ctx, log, client, *player, *platform)
}

func listPlatforms(ctx context.Context, log zerolog.Logger, client *rlstats.Client) {
	platforms, err := client.GetPlatforms(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list platforms")
	}
	for _, p := range platforms {
		log.Info().Int("id", p.ID).Str("name", p.Name).Msg("platform")
	}
}

func lookupPlayer(ctx context.Context, log zerolog.Logger, client *rlstats.Client, uniqueID string, platformID int) {
	p, err := client.GetPlayer(ctx, uniqueID, platformID)
	if err != nil {
		var apiErr *rlstats.APIError
		switch {
		case errors.Is(err, rlstats.ErrRateLimited):
			log.Fatal().Msg("rate limited, try again later")
		case errors.As(err, &apiErr):
			log.Fatal().Int("code", apiErr.Code).Str("message", apiErr.Message).Msg("service rejected the lookup")
		default:
			log.Fatal().Err(err).Msg("lookup failed")
		}
	}

	log.Info().
		Str("unique_id", p.UniqueID).
		Str("display_name", p.DisplayName).
		Str("platform", p.Platform.Name).
		Int("wins", p.Stats.Wins).
		Int("goals", p.Stats.Goals).
		Msg("player")
}
