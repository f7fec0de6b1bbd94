package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/hostgreet/app"
	"github.com/lambda-feedback/hostgreet/app/standalone"
	"github.com/lambda-feedback/hostgreet/util/conf"
	"github.com/lambda-feedback/hostgreet/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server and answers every GET
request with a greeting naming the host and the value of
APP_ENV. GET /health answers OK, for use as a liveness probe.

The server listens on all interfaces on the port given by the
PORT environment variable, 8080 if unset. The command blocks
until the process receives an interrupt or termination signal.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and greet incoming requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on. Empty listens on all interfaces.",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on. Defaults to $PORT or 8080.",
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseServeConfig(ctx, log)
	if err != nil {
		return err
	}

	log.Info("starting http server",
		zap.String("host", cfg.HttpConfig.Host),
		zap.Int("port", cfg.HttpConfig.Port),
	)

	return shell.Run(ctx.Context, standalone.Module(cfg))
}

// parseServeConfig layers defaults, the config file, $PORT and
// the http flags.
func parseServeConfig(ctx *cli.Context, log *zap.Logger) (standalone.Config, error) {
	return conf.Parse[standalone.Config](conf.ParseOptions{
		Cli:      ctx,
		Defaults: standalone.DefaultConfig,
		EnvKeys:  standalone.EnvKeys,
		FileName: ctx.Path("config"),
		Log:      log,
	})
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
