package trailingslash_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"

	"github.com/michalkubiak98/staticfast-showcase/lib/constructs/trailingslash"
)

func TestNewFunctionSynth(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	trailingslash.NewFunction(stack, "TrailingSlashFunction", &trailingslash.FunctionProps{
		FunctionName: "acme-trailing-slash",
	})

	template := assertions.Template_FromStack(stack, nil)
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Function"), map[string]interface{}{
		"Name":         "acme-trailing-slash",
		"AutoPublish":  true,
		"FunctionCode": assertions.Match_StringLikeRegexp(jsii.String(`request\.uri = uri \+ 'index\.html'`)),
	})
}

func TestCode_MatchesRewriteRule(t *testing.T) {
	code := trailingslash.Code("acme-trailing-slash")

	assert.Contains(t, code, "function handler(event)")
	assert.Contains(t, code, "if (!uri.includes('.'))")
	assert.Contains(t, code, "if (!uri.endsWith('/'))")
	assert.Contains(t, code, "return request;")
}

func TestAssociation_IsViewerRequest(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)
	fn := trailingslash.NewFunction(stack, "Fn", &trailingslash.FunctionProps{FunctionName: "acme-trailing-slash"})

	assoc := trailingslash.Association(fn)

	assert.Equal(t, awscloudfront.FunctionEventType_VIEWER_REQUEST, assoc.EventType)
}
