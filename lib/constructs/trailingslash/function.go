// Package trailingslash deploys the edge rewrite rule from lib/edge as a
// CloudFront Function.
package trailingslash

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/lib/edge"
	"github.com/michalkubiak98/staticfast-showcase/scripts/renderer"
)

// FunctionProps configures the trailing-slash CloudFront Function.
type FunctionProps struct {
	FunctionName string
}

// NewFunction registers the rewrite rule as a CloudFront Function. The source
// is rendered from the embedded template rather than kept inline here.
func NewFunction(scope constructs.Construct, id string, props *FunctionProps) awscloudfront.Function {
	code := Code(props.FunctionName)

	return awscloudfront.NewFunction(scope, jsii.String(id), &awscloudfront.FunctionProps{
		FunctionName: jsii.String(props.FunctionName),
		Code:         awscloudfront.FunctionCode_FromInline(jsii.String(code)),
	})
}

// Code returns the JavaScript deployed for functionName.
func Code(functionName string) string {
	return renderer.MustRender(renderer.TplTrailingSlash, renderer.TrailingSlashData{
		FunctionName:  functionName,
		IndexDocument: edge.IndexDocument,
	})
}

// Association attaches fn to viewer requests only.
func Association(fn awscloudfront.IFunction) *awscloudfront.FunctionAssociation {
	return &awscloudfront.FunctionAssociation{
		Function:  fn,
		EventType: awscloudfront.FunctionEventType_VIEWER_REQUEST,
	}
}
