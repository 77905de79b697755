package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/nameforge/internal/server"
	"github.com/dmitrymomot/nameforge/pkg/config"
	"github.com/dmitrymomot/nameforge/pkg/httpserver"
	"github.com/dmitrymomot/nameforge/pkg/logger"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	ThemeDir  string `env:"THEME_DIR"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)
	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	// LOG_LEVEL and LOG_FORMAT, when set, override the environment
	// defaults. Both fail startup on garbage values.
	logOpts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, "nameforged"),
		logger.WithContextExtractors(server.RequestIDExtractor()),
	}
	if appCfg.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(appCfg.LogFormat)))
	}
	if appCfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(appCfg.LogLevel)
		if err != nil {
			panic(err)
		}
		logOpts = append(logOpts, logger.WithLevel(lvl))
	}

	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	srv := server.New(
		server.WithLogger(log),
		server.WithThemeDir(appCfg.ThemeDir),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpSrv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("nameforged stopped")
		}),
	)
	if err := httpSrv.Run(ctx, srv.Router()); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
