// Package main is the AWS Lambda entrypoint. It wires the bridge pipeline
// around the built-in echo handler and hands the raw invocation contract to
// the Lambda runtime.
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/fnbridge/fnbridge/internal/app"
	"github.com/fnbridge/fnbridge/internal/bridge"
	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/config"
	"github.com/fnbridge/fnbridge/internal/events"
	"github.com/fnbridge/fnbridge/internal/lambdaapi"
	"github.com/fnbridge/fnbridge/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slogger := logger.Initialize(cfg.Environment, cfg.SlogLevel())

	c := codec.New()
	b := bridge.New(c, events.DefaultRegistry(c), slogger, bridge.Compat{
		StripBodyQuotes: cfg.GatewayCompat.StripBodyQuotes,
	})

	handler := lambdaapi.NewHandler(b, app.NewEcho(c, slogger), lambdaapi.Signature{}, slogger)
	lambda.Start(handler.Invoke)
}
