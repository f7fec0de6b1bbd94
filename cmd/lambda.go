package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/hostgreet/app"
	"github.com/lambda-feedback/hostgreet/app/lambda"
	"github.com/lambda-feedback/hostgreet/util/conf"
	"github.com/lambda-feedback/hostgreet/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the greeter as an AWS Lambda runtime
interface client. Proxy events from API Gateway or an Application
Load Balancer are translated to http requests and answered exactly
like the standalone server does.

The command blocks indefinitely, processing incoming AWS Lambda
events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:      ctx,
		Defaults: lambda.DefaultConfig,
		EnvKeys:  []string{},
		FileName: ctx.Path("config"),
		Log:      log,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return shell.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
