package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
)

// EdgeRegion is the only region CloudFront accepts viewer certificates from.
const EdgeRegion = "us-east-1"

// CertScope indicates certificate issuance scope: edge or region.
type CertScope string

const (
	// ScopeEdge issues a certificate in us-east-1 for edge services (e.g. CloudFront).
	ScopeEdge CertScope = "edge"
	// ScopeRegion issues a certificate in the same region as the calling stack.
	ScopeRegion CertScope = "region"
)

// CertProvider defines how to obtain an ACM certificate for a domain.
type CertProvider interface {
	// Get returns a DNS-validated ACM certificate for fqdn in the hosted zone.
	// additionalSANs lists extra SubjectAlternativeNames.
	Get(scope constructs.Construct, id string, zone awsroute53.IHostedZone, fqdn string, s CertScope, additionalSANs []*string) awscertificatemanager.ICertificate
}
