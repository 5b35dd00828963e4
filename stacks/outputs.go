package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/config"
)

// Export name suffixes. CI reads these to sync the build and invalidate the cache.
const (
	ExportBucketName         = "bucket-name"
	ExportDistributionID     = "distribution-id"
	ExportDistributionDomain = "distribution-domain"
	ExportWebsiteURL         = "website-url"
)

// SiteOutputs are the stack's CloudFormation outputs. WebsiteURL is nil
// without a custom domain.
type SiteOutputs struct {
	BucketName             awscdk.CfnOutput
	DistributionID         awscdk.CfnOutput
	DistributionDomainName awscdk.CfnOutput
	WebsiteURL             awscdk.CfnOutput
}

func addSiteOutputs(stack awscdk.Stack, cfg config.DeploymentConfig, bucket awss3.IBucket, distribution awscloudfront.IDistribution) SiteOutputs {
	out := SiteOutputs{
		BucketName: awscdk.NewCfnOutput(stack, jsii.String("BucketName"), &awscdk.CfnOutputProps{
			Value:       bucket.BucketName(),
			Description: jsii.String("S3 Bucket Name"),
			ExportName:  jsii.String(cfg.ExportName(ExportBucketName)),
		}),
		DistributionID: awscdk.NewCfnOutput(stack, jsii.String("DistributionId"), &awscdk.CfnOutputProps{
			Value:       distribution.DistributionId(),
			Description: jsii.String("CloudFront Distribution ID"),
			ExportName:  jsii.String(cfg.ExportName(ExportDistributionID)),
		}),
		DistributionDomainName: awscdk.NewCfnOutput(stack, jsii.String("DistributionDomainName"), &awscdk.CfnOutputProps{
			Value:       distribution.DistributionDomainName(),
			Description: jsii.String("CloudFront Distribution Domain Name"),
			ExportName:  jsii.String(cfg.ExportName(ExportDistributionDomain)),
		}),
	}

	if cfg.HasDomain() {
		out.WebsiteURL = awscdk.NewCfnOutput(stack, jsii.String("WebsiteUrl"), &awscdk.CfnOutputProps{
			Value:       jsii.String(cfg.WebsiteURL()),
			Description: jsii.String("Website URL"),
			ExportName:  jsii.String(cfg.ExportName(ExportWebsiteURL)),
		})
	}

	return out
}
