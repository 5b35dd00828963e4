package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/lib/cdklogger"
)

// defaultProvider is the standard implementation of CertProvider.
type defaultProvider struct{}

// New returns a CertProvider that issues certificates for edge or regional scopes.
func New() CertProvider {
	return &defaultProvider{}
}

// Get returns an ACM certificate for the given fqdn in the hosted zone under the specified scope.
//
// Edge certificates stay in the calling stack when it already deploys to
// us-east-1. Otherwise they go to a sibling "<stack>-edge-cert" stack pinned
// to us-east-1, and the certificate ARN flows back through a cross-region
// reference.
func (p *defaultProvider) Get(
	scope constructs.Construct,
	id string,
	zone awsroute53.IHostedZone,
	fqdn string,
	sScope CertScope,
	additionalSANs []*string,
) awscertificatemanager.ICertificate {
	var certScope constructs.Construct = scope
	if sScope == ScopeEdge && !InEdgeRegion(scope) {
		certScope = edgeStack(scope)
		cdklogger.LogInfo(scope, id, "Stack region is not %s; issuing %s in %s", EdgeRegion, fqdn, *certScope.Node().Path())
	}

	certProps := &awscertificatemanager.CertificateProps{
		DomainName: jsii.String(fqdn),
		Validation: awscertificatemanager.CertificateValidation_FromDns(zone),
	}
	if len(additionalSANs) > 0 {
		certProps.SubjectAlternativeNames = &additionalSANs
	}

	return awscertificatemanager.NewCertificate(certScope, jsii.String(id), certProps)
}

// InEdgeRegion reports whether scope belongs to a stack with a concrete
// us-east-1 region. Environment-agnostic stacks report false.
func InEdgeRegion(scope constructs.Construct) bool {
	region := awscdk.Stack_Of(scope).Region()
	if region == nil || *awscdk.Token_IsUnresolved(region) {
		return false
	}
	return *region == EdgeRegion
}

// edgeStack returns the us-east-1 sibling of scope's stack, creating it on
// first use so several certificates share one stack.
func edgeStack(scope constructs.Construct) awscdk.Stack {
	parent := awscdk.Stack_Of(scope)
	stage := awscdk.Stage_Of(scope)
	stackID := *parent.StackName() + "-edge-cert"

	if existing := stage.Node().TryFindChild(jsii.String(stackID)); existing != nil {
		return awscdk.Stack_Of(existing)
	}

	var account *string
	if !*awscdk.Token_IsUnresolved(parent.Account()) {
		account = parent.Account()
	}

	return awscdk.NewStack(stage, jsii.String(stackID), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: account,
			Region:  jsii.String(EdgeRegion),
		},
		CrossRegionReferences: jsii.Bool(true),
		Description:           jsii.String("Edge (us-east-1) certificate for " + *parent.StackName()),
	})
}
