package utils

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/config"
)

// CdkEnv determines the AWS environment (account+region) in which our stack is to
// be deployed. Both values come from the deployment config, never from the
// CDK_DEFAULT_* variables, so synth is reproducible across machines.
// For more information see: https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func CdkEnv(cfg config.DeploymentConfig) *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(cfg.AWSAccountID),
		Region:  jsii.String(cfg.AWSRegion),
	}
}
