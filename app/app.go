package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/hostgreet/config"
	"github.com/lambda-feedback/hostgreet/greeting"
	"github.com/lambda-feedback/hostgreet/internal/env"
	"github.com/lambda-feedback/hostgreet/internal/shell"
	"github.com/lambda-feedback/hostgreet/util/conf"
	"github.com/lambda-feedback/hostgreet/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	overlay, err := loadOverlay(cfg, log)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(cfg, overlay)), nil
}

// SharedModule provides the dependencies common to all commands.
func SharedModule(cfg config.Config, overlay env.Overlay) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide env file variables
		fx.Supply(overlay),
		// provide environment
		fx.Provide(env.NewSystemProvider),
		// provide greeting handler
		greeting.Module(),
	)
}

func loadOverlay(cfg config.Config, log *zap.Logger) (env.Overlay, error) {
	if cfg.EnvFile == "" {
		return env.Overlay{}, nil
	}

	vars, err := conf.LoadEnvFile(cfg.EnvFile)
	if err != nil {
		log.Error("failed to load env file", zap.Error(err))
		return nil, err
	}

	log.Debug("loaded env file",
		zap.String("file", cfg.EnvFile),
		zap.Int("vars", len(vars)),
	)

	return env.Overlay(vars), nil
}
