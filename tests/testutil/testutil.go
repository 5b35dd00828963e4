package testutil

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/config"
	"github.com/michalkubiak98/staticfast-showcase/lib/utils"
)

//---------------------------------------------------------------------
// 1. Config fixtures
//---------------------------------------------------------------------

// DeploymentConfig returns a valid config for project "acme" in us-east-1,
// with mods applied in order.
func DeploymentConfig(mods ...func(*config.DeploymentConfig)) config.DeploymentConfig {
	cfg := config.DeploymentConfig{
		ProjectSlug:  "acme",
		BusinessName: "Acme Plumbing",
		AWSRegion:    "us-east-1",
		AWSAccountID: "123456789012",
	}
	for _, mod := range mods {
		mod(&cfg)
	}
	return cfg
}

func WithDomain(name string) func(*config.DeploymentConfig) {
	return func(c *config.DeploymentConfig) { c.DomainName = name }
}

func WithWWW() func(*config.DeploymentConfig) {
	return func(c *config.DeploymentConfig) { c.WWWRedirect = true }
}

func WithRegion(region string) func(*config.DeploymentConfig) {
	return func(c *config.DeploymentConfig) { c.AWSRegion = region }
}

//---------------------------------------------------------------------
// 2. CDK fixtures
//---------------------------------------------------------------------

// NewStack returns a bare stack deployed to cfg's environment, for
// construct-level tests that need a concrete account and region.
func NewStack(cfg config.DeploymentConfig) awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String(cfg.DefaultStackName()), &awscdk.StackProps{
		Env:                   utils.CdkEnv(cfg),
		CrossRegionReferences: jsii.Bool(true),
	})
}

// LogicalID returns the logical id of the only resource of resourceType.
func LogicalID(t *testing.T, template assertions.Template, resourceType string) string {
	t.Helper()
	resources := *template.FindResources(jsii.String(resourceType), nil)
	if len(resources) != 1 {
		t.Fatalf("expected one %s, found %d", resourceType, len(resources))
	}
	for id := range resources {
		return id
	}
	return ""
}
