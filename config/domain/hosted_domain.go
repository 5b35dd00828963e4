package domain

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	jsii "github.com/aws/jsii-runtime-go"

	"github.com/michalkubiak98/staticfast-showcase/lib/cdklogger"
	provider "github.com/michalkubiak98/staticfast-showcase/lib/cert/provider"
)

// HostedDomainProps holds inputs for creating a HostedDomain construct.
type HostedDomainProps struct {
	Spec            Spec
	EdgeCertificate bool                  // if true, the certificate is issued in us-east-1
	CertProvider    provider.CertProvider // defaults to provider.New()
}

// HostedDomain looks up an existing Route53 hosted zone and provisions an ACM
// certificate covering every name in Spec. The zone must already exist;
// a missing zone fails the deploy.
type HostedDomain struct {
	constructs.Construct
	Zone       awsroute53.IHostedZone
	Cert       awscertificatemanager.ICertificate
	FQDN       string   // apex domain
	Names      []string // apex first, then www if requested
	DomainName *string
}

// NewHostedDomain creates a HostedDomain under scope.
func NewHostedDomain(scope constructs.Construct, id string, props *HostedDomainProps) *HostedDomain {
	hdConstruct := constructs.NewConstruct(scope, jsii.String(id))
	hd := &HostedDomain{Construct: hdConstruct}

	hd.FQDN = *props.Spec.FQDN()
	hd.DomainName = jsii.String(hd.FQDN)
	hd.Names = props.Spec.Names()

	hd.Zone = awsroute53.HostedZone_FromLookup(hdConstruct, jsii.String("Zone"), &awsroute53.HostedZoneProviderProps{
		DomainName: jsii.String(hd.FQDN),
	})

	cdklogger.LogInfo(hdConstruct, "", "Setting up hosted domain. Names: %v, EdgeCertificate: %t", hd.Names, props.EdgeCertificate)

	certProvider := props.CertProvider
	if certProvider == nil {
		certProvider = provider.New()
	}
	scopeKind := provider.ScopeRegion
	if props.EdgeCertificate {
		scopeKind = provider.ScopeEdge
	}

	hd.Cert = certProvider.Get(hdConstruct, "Cert", hd.Zone, hd.FQDN, scopeKind, props.Spec.AlternativeNames())

	return hd
}

// AddARecord creates an alias A record for the fully-qualified name in this
// hosted zone.
func (h *HostedDomain) AddARecord(id string, name string, target awsroute53.RecordTarget) awsroute53.ARecord {
	return awsroute53.NewARecord(h.Construct, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       h.Zone,
		RecordName: jsii.String(name),
		Target:     target,
	})
}
