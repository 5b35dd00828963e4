package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/michalkubiak98/staticfast-showcase/config"
	"github.com/michalkubiak98/staticfast-showcase/lib/utils"
	"github.com/michalkubiak98/staticfast-showcase/stacks"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// the only place that reads the process environment
	cfg, err := config.Load(nil)
	if err != nil {
		logger.Fatal("Invalid deployment config", zap.Error(err))
	}

	app := awscdk.NewApp(nil)

	stackName := config.StackName(app, cfg)
	_, err = stacks.StaticSiteStack(app, stackName, &stacks.StaticSiteStackProps{
		StackProps: awscdk.StackProps{
			Env:                   utils.CdkEnv(cfg),
			CrossRegionReferences: jsii.Bool(true),
		},
		Config: cfg,
	})
	if err != nil {
		logger.Fatal("Failed to compose stack", zap.String("stack", stackName), zap.Error(err))
	}

	app.Synth(nil)
}

// newLogger returns a development logger when CDK_DEBUG=true.
func newLogger() *zap.Logger {
	build := zap.NewProduction
	if os.Getenv("CDK_DEBUG") == "true" {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger
}
