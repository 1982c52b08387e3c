package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/container"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	c, err := container.New(cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	adapter := httpadapter.New(c.Handler())
	lambda.Start(adapter.ProxyWithContext)
}
