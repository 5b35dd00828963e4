// Package sitebucket provisions the private S3 bucket the static export is
// synced into.
package sitebucket

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/lib/cdklogger"
)

// SiteBucketProps configures the website bucket.
type SiteBucketProps struct {
	BucketName    string
	IndexDocument string
}

// SiteBucket wraps the bucket together with the only read path into it.
type SiteBucket struct {
	constructs.Construct
	Bucket awss3.Bucket
}

// NewSiteBucket creates a bucket with all public access blocked. The index
// document doubles as the error document so unknown keys fall back to the
// site shell. The bucket and every object in it are destroyed with the stack.
func NewSiteBucket(scope constructs.Construct, id string, props *SiteBucketProps) *SiteBucket {
	if props == nil || props.BucketName == "" {
		panic(fmt.Sprintf("sitebucket %s: BucketName is required", id))
	}
	indexDocument := props.IndexDocument
	if indexDocument == "" {
		indexDocument = "index.html"
	}

	c := constructs.NewConstruct(scope, jsii.String(id))

	bucket := awss3.NewBucket(c, jsii.String("Bucket"), &awss3.BucketProps{
		BucketName:           jsii.String(props.BucketName),
		WebsiteIndexDocument: jsii.String(indexDocument),
		WebsiteErrorDocument: jsii.String(indexDocument),
		PublicReadAccess:     jsii.Bool(false),
		BlockPublicAccess:    awss3.BlockPublicAccess_BLOCK_ALL(),
		RemovalPolicy:        awscdk.RemovalPolicy_DESTROY,
		AutoDeleteObjects:    jsii.Bool(true),
	})

	cdklogger.LogWarning(c, id, "Bucket %s uses RemovalPolicy DESTROY with auto-delete; all site objects are lost on stack teardown", props.BucketName)

	return &SiteBucket{Construct: c, Bucket: bucket}
}

// GrantDistributionRead lets exactly one CloudFront distribution read objects.
// The SourceArn condition pins the grant to this distribution id, so other
// distributions (including ones in other accounts) cannot read the bucket
// even if they learn its name.
func (s *SiteBucket) GrantDistributionRead(distribution awscloudfront.IDistribution) {
	stack := awscdk.Stack_Of(s.Construct)
	sourceArn := fmt.Sprintf("arn:aws:cloudfront::%s:distribution/%s", *stack.Account(), *distribution.DistributionId())

	s.Bucket.AddToResourcePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:     awsiam.Effect_ALLOW,
		Principals: &[]awsiam.IPrincipal{awsiam.NewServicePrincipal(jsii.String("cloudfront.amazonaws.com"), nil)},
		Actions:    jsii.Strings("s3:GetObject"),
		Resources:  jsii.Strings(*s.Bucket.ArnForObjects(jsii.String("*"))),
		Conditions: &map[string]interface{}{
			"StringEquals": map[string]interface{}{
				"AWS:SourceArn": sourceArn,
			},
		},
	}))
}
