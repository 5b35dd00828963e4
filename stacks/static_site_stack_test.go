package stacks_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michalkubiak98/staticfast-showcase/config"
	"github.com/michalkubiak98/staticfast-showcase/stacks"
	"github.com/michalkubiak98/staticfast-showcase/tests/testutil"
)

func synth(t *testing.T, cfg config.DeploymentConfig) (*stacks.StaticSiteExports, assertions.Template) {
	t.Helper()
	app := awscdk.NewApp(nil)
	exports, err := stacks.StaticSiteStack(app, cfg.DefaultStackName(), &stacks.StaticSiteStackProps{Config: cfg})
	require.NoError(t, err)
	return exports, assertions.Template_FromStack(exports.Stack, nil)
}

func distributionConfig(pattern map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&pattern),
	}
}

func TestStaticSiteStack_NoDomain(t *testing.T) {
	exports, template := synth(t, testutil.DeploymentConfig())

	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(0))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), distributionConfig(map[string]interface{}{
		"Aliases":           assertions.Match_Absent(),
		"ViewerCertificate": assertions.Match_Absent(),
		"Comment":           "Acme Plumbing Website",
	}))
	assert.Nil(t, exports.Domain)
	assert.Nil(t, exports.Certificate)
	assert.Empty(t, exports.Records)
	assert.Nil(t, exports.Stack.Node().TryFindChild(jsii.String("Domain")), "no hosted-zone lookup")
	assert.Nil(t, exports.Outputs.WebsiteURL)

	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"BucketName": "acme-website-123456789012",
	})
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Function"), map[string]interface{}{
		"Name": "acme-trailing-slash",
	})
	template.HasResourceProperties(jsii.String("AWS::CloudFront::OriginAccessControl"), map[string]interface{}{
		"OriginAccessControlConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Description": "OAC for Acme Plumbing website",
		}),
	})

	template.HasOutput(jsii.String("BucketName"), map[string]interface{}{
		"Export": map[string]interface{}{"Name": "acme-bucket-name"},
	})
	template.HasOutput(jsii.String("DistributionId"), map[string]interface{}{
		"Export": map[string]interface{}{"Name": "acme-distribution-id"},
	})
	template.HasOutput(jsii.String("DistributionDomainName"), map[string]interface{}{
		"Export": map[string]interface{}{"Name": "acme-distribution-domain"},
	})
	assert.Empty(t, *template.FindOutputs(jsii.String("WebsiteUrl"), nil))
}

func TestStaticSiteStack_ViewerRequestFunctionAttached(t *testing.T) {
	_, template := synth(t, testutil.DeploymentConfig())

	functionID := testutil.LogicalID(t, template, "AWS::CloudFront::Function")

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), distributionConfig(map[string]interface{}{
		"DefaultRootObject": "index.html",
		"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
			"ViewerProtocolPolicy": "redirect-to-https",
			"Compress":             true,
			"FunctionAssociations": []interface{}{
				map[string]interface{}{
					"EventType": "viewer-request",
					"FunctionARN": map[string]interface{}{
						"Fn::GetAtt": []interface{}{functionID, "FunctionARN"},
					},
				},
			},
		}),
	}))
}

func TestStaticSiteStack_DomainWithoutWWW(t *testing.T) {
	cfg := testutil.DeploymentConfig(testutil.WithDomain("acme.example.com"))

	exports, template := synth(t, cfg)

	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CertificateManager::Certificate"), map[string]interface{}{
		"DomainName":              "acme.example.com",
		"SubjectAlternativeNames": assertions.Match_Absent(),
		"ValidationMethod":        "DNS",
	})
	template.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), map[string]interface{}{
		"Name":        "acme.example.com.",
		"Type":        "A",
		"AliasTarget": assertions.Match_AnyValue(),
	})
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), distributionConfig(map[string]interface{}{
		"Aliases":           []interface{}{"acme.example.com"},
		"ViewerCertificate": assertions.Match_ObjectLike(&map[string]interface{}{"SslSupportMethod": "sni-only"}),
	}))
	template.HasOutput(jsii.String("WebsiteUrl"), map[string]interface{}{
		"Value":  "https://acme.example.com",
		"Export": map[string]interface{}{"Name": "acme-website-url"},
	})
	assert.Len(t, exports.Records, 1)
}

func TestStaticSiteStack_DomainWithWWW(t *testing.T) {
	cfg := testutil.DeploymentConfig(testutil.WithDomain("acme.example.com"), testutil.WithWWW())

	exports, template := synth(t, cfg)

	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(2))
	template.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), map[string]interface{}{
		"Name": "www.acme.example.com.",
		"Type": "A",
	})
	template.HasResourceProperties(jsii.String("AWS::CertificateManager::Certificate"), map[string]interface{}{
		"DomainName":              "acme.example.com",
		"SubjectAlternativeNames": []interface{}{"www.acme.example.com"},
	})
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), distributionConfig(map[string]interface{}{
		"Aliases": []interface{}{"acme.example.com", "www.acme.example.com"},
	}))
	assert.Len(t, exports.Records, 2)
}

func TestStaticSiteStack_WWWWithoutDomainIsIgnored(t *testing.T) {
	cfg := testutil.DeploymentConfig(testutil.WithWWW())

	exports, template := synth(t, cfg)

	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
	assertions.Annotations_FromStack(exports.Stack).HasWarning(
		jsii.String("/acme-stack"),
		assertions.Match_StringLikeRegexp(jsii.String("WWW_REDIRECT is ignored")),
	)
}

func TestStaticSiteStack_MissingAccountFailsBeforeSynth(t *testing.T) {
	cfg := testutil.DeploymentConfig(func(c *config.DeploymentConfig) { c.AWSAccountID = "" })
	app := awscdk.NewApp(nil)

	exports, err := stacks.StaticSiteStack(app, "acme-stack", &stacks.StaticSiteStackProps{Config: cfg})

	require.ErrorIs(t, err, config.ErrMissingAccountID)
	assert.Nil(t, exports)
	assert.Empty(t, *app.Node().Children())
}

func TestStaticSiteStack_BucketPolicyPinnedToDistribution(t *testing.T) {
	_, template := synth(t, testutil.DeploymentConfig())

	distributionID := testutil.LogicalID(t, template, "AWS::CloudFront::Distribution")

	policies := *template.FindResources(jsii.String("AWS::S3::BucketPolicy"), nil)
	require.Len(t, policies, 1)
	raw, err := json.Marshal(policies)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"arn:aws:cloudfront::123456789012:distribution/"`)
	assert.Contains(t, body, `{"Ref":"`+distributionID+`"}`)
	assert.Contains(t, body, `"AWS:SourceArn"`)
}

func TestStaticSiteStack_CertificateAlwaysInUsEast1(t *testing.T) {
	for _, region := range []string{"us-east-1", "eu-west-1", "ap-southeast-2"} {
		t.Run(region, func(t *testing.T) {
			cfg := testutil.DeploymentConfig(testutil.WithDomain("acme.example.com"), testutil.WithRegion(region))

			exports, template := synth(t, cfg)
			require.NotNil(t, exports.Certificate)

			certStack := awscdk.Stack_Of(exports.Certificate)
			assert.Equal(t, "us-east-1", *certStack.Region())
			assert.Equal(t, region, *exports.Stack.Region())

			if region == "us-east-1" {
				assert.Equal(t, *exports.Stack.StackName(), *certStack.StackName())
				return
			}

			assert.Equal(t, "acme-stack-edge-cert", *certStack.StackName())
			template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
			assertions.Template_FromStack(certStack, nil).
				ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(1))
			template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), distributionConfig(map[string]interface{}{
				"ViewerCertificate": assertions.Match_AnyValue(),
			}))
		})
	}
}
