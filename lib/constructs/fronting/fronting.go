package fronting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
)

// FrontingResult bundles the distribution with the names it answers on.
// DomainNames is empty when the site only uses the generated
// *.cloudfront.net domain. DNS records should be created for these names only.
type FrontingResult struct {
	Distribution awscloudfront.Distribution
	DomainNames  []string
}

// FrontingProps holds the inputs needed to put a CDN in front of the site bucket.
type FrontingProps struct {
	// Bucket is the private origin bucket.
	Bucket awss3.IBucket
	// OriginAccessControl is the identity CloudFront signs origin requests with.
	OriginAccessControl awscloudfront.IOriginAccessControl
	// FunctionAssociations are attached to the default behavior.
	FunctionAssociations []*awscloudfront.FunctionAssociation
	// Certificate must live in us-east-1. Nil when DomainNames is empty.
	Certificate awscertificatemanager.ICertificate
	// DomainNames are the aliases, apex first.
	DomainNames []string
	// Comment shows up in the CloudFront console.
	Comment string
	// IndexDocument is the default root object and the SPA fallback page.
	IndexDocument string
}

// Fronting abstracts how the site bucket is exposed to viewers.
type Fronting interface {
	// AttachRoutes provisions the CDN in front of props.Bucket.
	AttachRoutes(scope constructs.Construct, id string, props *FrontingProps) FrontingResult
}
