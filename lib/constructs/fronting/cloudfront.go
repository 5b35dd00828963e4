package fronting

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"

	"github.com/michalkubiak98/staticfast-showcase/lib/cdklogger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Static export behind CloudFront
//
//   - The bucket is never public. CloudFront reads it through an origin access
//     control, and the bucket policy names this distribution explicitly.
//
//   - 403 and 404 from S3 both become 200 + /index.html. A missing key on a
//     private bucket comes back as 403, so mapping only 404 would leave
//     client-side routes broken.
//
//   - Only GET/HEAD are allowed; there is nothing to POST to.
// ──────────────────────────────────────────────────────────────────────────────
type cloudFront struct{}

// NewCloudFrontFronting returns a Fronting backed by a CloudFront distribution.
func NewCloudFrontFronting() Fronting {
	return &cloudFront{}
}

// AttachRoutes creates the distribution. Aliases without a certificate are
// dropped and reported as a synth error, so the app fails before deploy.
func (c *cloudFront) AttachRoutes(scope constructs.Construct, id string, props *FrontingProps) FrontingResult {
	if props.Bucket == nil {
		panic(fmt.Sprintf("Bucket is required for cloudFront fronting %s", id))
	}
	domainNames := props.DomainNames
	if len(domainNames) > 0 && props.Certificate == nil {
		cdklogger.LogError(scope, id, "Domain names %v need a us-east-1 certificate; serving without aliases", domainNames)
		domainNames = nil
	}

	indexDocument := props.IndexDocument
	if indexDocument == "" {
		indexDocument = "index.html"
	}

	origin := awscloudfrontorigins.S3BucketOrigin_WithOriginAccessControl(props.Bucket, &awscloudfrontorigins.S3BucketOriginWithOACProps{
		OriginAccessControl: props.OriginAccessControl,
	})

	behavior := &awscloudfront.BehaviorOptions{
		Origin:               origin,
		ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_GET_HEAD(),
		CachedMethods:        awscloudfront.CachedMethods_CACHE_GET_HEAD(),
		Compress:             jsii.Bool(true),
	}
	if len(props.FunctionAssociations) > 0 {
		behavior.FunctionAssociations = &props.FunctionAssociations
	}

	distProps := &awscloudfront.DistributionProps{
		DefaultBehavior:   behavior,
		DefaultRootObject: jsii.String(indexDocument),
		ErrorResponses:    spaErrorResponses(indexDocument),
	}
	if props.Comment != "" {
		distProps.Comment = jsii.String(props.Comment)
	}
	if len(domainNames) > 0 {
		aliases := lo.Map(domainNames, func(name string, _ int) *string {
			return jsii.String(name)
		})
		distProps.DomainNames = &aliases
		distProps.Certificate = props.Certificate
	}

	distribution := awscloudfront.NewDistribution(scope, jsii.String(id), distProps)

	if len(domainNames) == 0 {
		cdklogger.LogInfo(scope, id, "No custom domain; the site is served on the generated CloudFront domain only")
	}

	return FrontingResult{
		Distribution: distribution,
		DomainNames:  domainNames,
	}
}

// spaErrorResponses maps 404 and 403 to the index document with status 200.
func spaErrorResponses(indexDocument string) *[]*awscloudfront.ErrorResponse {
	page := jsii.String("/" + indexDocument)
	return &[]*awscloudfront.ErrorResponse{
		{
			HttpStatus:         jsii.Number(404),
			ResponseHttpStatus: jsii.Number(200),
			ResponsePagePath:   page,
		},
		{
			HttpStatus:         jsii.Number(403),
			ResponseHttpStatus: jsii.Number(200),
			ResponsePagePath:   page,
		},
	}
}
