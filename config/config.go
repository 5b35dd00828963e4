package config

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DO NOT hardcode stack names, change them by 'cdk.json/context/stackName' or
// 'cdk deploy --context stackName=...'. Falls back to "<slug>-stack".
func StackName(scope constructs.Construct, cfg DeploymentConfig) string {
	stackName := cfg.DefaultStackName()

	ctxValue := scope.Node().TryGetContext(jsii.String("stackName"))
	if v, ok := ctxValue.(string); ok && v != "" {
		stackName = v
	}

	return stackName
}
