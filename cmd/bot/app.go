package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"test-entitlement-bot/internal/adapters/discord"
	"test-entitlement-bot/internal/adapters/discord/api"
	"test-entitlement-bot/internal/adapters/discord/commands"
	"test-entitlement-bot/internal/config"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	logger             *slog.Logger
	discord            *discordgo.Session
	router             *commands.Router
	metricsServer      *http.Server
	registeredCommands []*discordgo.ApplicationCommand
	cancel             context.CancelFunc
}

func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	client, err := api.NewClient(cfg.Token, cfg.ApplicationID, cfg.SkuID,
		api.WithBaseURL(cfg.APIBaseURL),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create entitlement client: %w", err)
	}

	session, err := discord.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	botHandler := commands.NewBotHandler(client, logger)
	botHandler.BaseContext = func() context.Context { return ctx }

	adminOnly := commands.WithAdmin(logger)
	router := commands.NewRouter(logger)
	router.Register(commands.CmdAddTestEntitlement, adminOnly(botHandler.AddTestEntitlement))
	router.Register(commands.CmdRemoveTestEntitlement, adminOnly(botHandler.RemoveTestEntitlement))

	session.AddHandler(botHandler.ReadyHandler)
	session.AddHandler(router.HandleFunc())

	return &App{
		config:  cfg,
		logger:  logger,
		discord: session,
		router:  router,
		cancel:  cancel,
	}, nil
}

func (a *App) Run() error {
	if err := a.discord.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	a.registeredCommands = commands.RegisterCommands(a.logger, a.discord, commands.GetApplicationCommands(), a.config.ApplicationID, a.config.DiscordGuildID)

	a.startMetricsServer()

	a.logger.Info("Test entitlement bot started", "application_id", a.config.ApplicationID, "guild", a.config.DiscordGuildID)
	return nil
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func(srv *http.Server) {
		a.logger.Info("Metrics server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Metrics server failed", "error", err)
		}
	}(a.metricsServer)
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down...")

	if a.cancel != nil {
		a.cancel()
	}

	var errs []error

	if a.discord != nil {
		commands.CleanupCommands(a.logger, a.discord, a.registeredCommands, a.config.ApplicationID, a.config.DiscordGuildID)
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop metrics server: %w", err))
		}
	}

	return errors.Join(errs...)
}
