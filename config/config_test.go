package config

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/stretchr/testify/assert"
)

func TestStackName(t *testing.T) {
	cfg := DeploymentConfig{ProjectSlug: "acme"}

	app := awscdk.NewApp(nil)
	assert.Equal(t, "acme-stack", StackName(app, cfg))

	override := awscdk.NewApp(&awscdk.AppProps{
		Context: &map[string]interface{}{"stackName": "acme-preview"},
	})
	assert.Equal(t, "acme-preview", StackName(override, cfg))
}
