package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"command-registrar/internal/adapters/console"
	"command-registrar/internal/adapters/discord"
	"command-registrar/internal/adapters/metrics"
	"command-registrar/internal/config"
	"command-registrar/internal/core/domain"
	"command-registrar/internal/core/services"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type App struct {
	config  *config.Config
	service *services.RegistrationService
}

func NewApp(cfg *config.Config, stdout io.Writer) *App {
	client := discord.NewClient(discord.WithBaseURL(cfg.APIBaseURL))
	reporter := console.NewReporter(stdout)

	return &App{
		config:  cfg,
		service: services.NewRegistrationService(client, reporter),
	}
}

// Run registers the command. The request is bounded only by ctx unless
// REQUEST_TIMEOUT is set.
func (a *App) Run(ctx context.Context) error {
	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}

	_, err := a.service.Register(ctx, a.config)
	return err
}

// Shutdown pushes metrics when a Pushgateway is configured.
func (a *App) Shutdown(ctx context.Context) error {
	if a.config.PushgatewayURL == "" {
		return nil
	}
	return metrics.Push(ctx, a.config.PushgatewayURL)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	InitLogger(stderr, slog.LevelInfo, false)

	var opts Options
	parser := newParser(&opts)

	if err := parseOptions(parser, args, stdout); err != nil {
		if errors.Is(err, errHelpShown) {
			return exitOK
		}
		parser.WriteHelp(stderr)
		fmt.Fprintf(stderr, "%s: error: %v\n", parser.Name, err)
		return exitUsage
	}

	cfg, err := config.Load(config.Flags{
		Token:   opts.Token,
		AppID:   opts.AppID,
		GuildID: opts.GuildID,
	})
	if err != nil {
		var missing *domain.MissingArgumentError
		if errors.As(err, &missing) {
			parser.WriteHelp(stderr)
			fmt.Fprintf(stderr, "%s: error: %v\n", parser.Name, err)
			return exitUsage
		}
		slog.Error("Failed to load configuration", "error", err)
		return exitFailure
	}

	InitLogger(stderr, cfg.Level(), cfg.LogJSON)

	app := NewApp(cfg, stdout)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to push metrics", "error", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		var netErr *domain.NetworkError
		var parseErr *domain.ResponseParseError
		switch {
		case errors.As(err, &netErr):
			slog.Error("Request failed", "url", netErr.URL, "error", netErr.Err)
		case errors.As(err, &parseErr):
			slog.Error("Response is not valid JSON", "status", parseErr.StatusCode, "error", parseErr.Err)
		default:
			slog.Error("Command registration failed", "error", err)
		}
		return exitFailure
	}

	return exitOK
}
