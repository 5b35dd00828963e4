package stacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/config"
	"github.com/michalkubiak98/staticfast-showcase/config/domain"
	"github.com/michalkubiak98/staticfast-showcase/lib/cdklogger"
	provider "github.com/michalkubiak98/staticfast-showcase/lib/cert/provider"
	"github.com/michalkubiak98/staticfast-showcase/lib/constructs/fronting"
	"github.com/michalkubiak98/staticfast-showcase/lib/constructs/sitebucket"
	"github.com/michalkubiak98/staticfast-showcase/lib/constructs/trailingslash"
	"github.com/michalkubiak98/staticfast-showcase/lib/edge"
	"github.com/michalkubiak98/staticfast-showcase/lib/utils"
)

type StaticSiteStackProps struct {
	awscdk.StackProps
	Config config.DeploymentConfig
	// CertProvider overrides how the edge certificate is issued. Defaults to provider.New().
	CertProvider provider.CertProvider
}

// StaticSiteExports is what the stack hands back to the app: the resources
// other stacks or tests may reference, plus the CloudFormation outputs.
type StaticSiteExports struct {
	Stack        awscdk.Stack
	Bucket       *sitebucket.SiteBucket
	Function     awscloudfront.Function
	Distribution awscloudfront.Distribution
	// Domain and Certificate are nil without DOMAIN_NAME.
	Domain      *domain.HostedDomain
	Certificate awscertificatemanager.ICertificate
	Records     []awsroute53.ARecord
	Outputs     SiteOutputs
}

// StaticSiteStack composes the static hosting resources for one deployment.
// The config is validated before the stack is created, so a missing account
// id leaves the app untouched.
func StaticSiteStack(scope constructs.Construct, id string, props *StaticSiteStackProps) (*StaticSiteExports, error) {
	if props == nil {
		return nil, fmt.Errorf("%w: StaticSiteStack %s needs props", config.ErrInvalidConfig, id)
	}
	cfg := props.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sprops := props.StackProps
	if sprops.Env == nil {
		sprops.Env = utils.CdkEnv(cfg)
	}
	if sprops.CrossRegionReferences == nil {
		// the edge certificate may live in a us-east-1 sibling stack
		sprops.CrossRegionReferences = jsii.Bool(true)
	}
	if sprops.Description == nil {
		sprops.Description = jsii.String(fmt.Sprintf("Static website hosting for %s", cfg.BusinessName))
	}
	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)

	cdklogger.LogInfo(stack, "", "Composing static site. Slug: %s, Domain: %q, WWW: %t, Region: %s",
		cfg.ProjectSlug, cfg.DomainName, cfg.ServesWWW(), cfg.AWSRegion)
	if cfg.WWWRedirect && !cfg.HasDomain() {
		cdklogger.LogWarning(stack, "", "WWW_REDIRECT is ignored because DOMAIN_NAME is not set")
	}

	exports := &StaticSiteExports{Stack: stack}

	exports.Bucket = sitebucket.NewSiteBucket(stack, "Website", &sitebucket.SiteBucketProps{
		BucketName:    cfg.BucketName(),
		IndexDocument: edge.IndexDocument,
	})

	exports.Function = trailingslash.NewFunction(stack, "TrailingSlashFunction", &trailingslash.FunctionProps{
		FunctionName: cfg.FunctionName(),
	})

	originAccessControl := awscloudfront.NewS3OriginAccessControl(stack, jsii.String("OAC"), &awscloudfront.S3OriginAccessControlProps{
		Description: jsii.String(fmt.Sprintf("OAC for %s website", cfg.BusinessName)),
	})

	var domainNames []string
	if cfg.HasDomain() {
		exports.Domain = domain.NewHostedDomain(stack, "Domain", &domain.HostedDomainProps{
			Spec:            domain.Spec{Apex: cfg.DomainName, WWW: cfg.ServesWWW()},
			EdgeCertificate: true,
			CertProvider:    props.CertProvider,
		})
		exports.Certificate = exports.Domain.Cert
		domainNames = exports.Domain.Names
	}

	site := fronting.NewCloudFrontFronting().AttachRoutes(stack, "Distribution", &fronting.FrontingProps{
		Bucket:               exports.Bucket.Bucket,
		OriginAccessControl:  originAccessControl,
		FunctionAssociations: []*awscloudfront.FunctionAssociation{trailingslash.Association(exports.Function)},
		Certificate:          exports.Certificate,
		DomainNames:          domainNames,
		Comment:              fmt.Sprintf("%s Website", cfg.BusinessName),
		IndexDocument:        edge.IndexDocument,
	})
	exports.Distribution = site.Distribution

	exports.Bucket.GrantDistributionRead(exports.Distribution)

	if exports.Domain != nil {
		target := awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(exports.Distribution))
		// aliases are apex first, then www
		recordIDs := []string{"ARecord", "WWWARecord"}
		for i, name := range site.DomainNames {
			exports.Records = append(exports.Records, exports.Domain.AddARecord(recordIDs[i], name, target))
		}
	}

	exports.Outputs = addSiteOutputs(stack, cfg, exports.Bucket.Bucket, exports.Distribution)

	return exports, nil
}
