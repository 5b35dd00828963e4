package domain

import (
	"strings"

	jsii "github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
)

// WWWLabel is the label prepended to the apex for the www variant.
const WWWLabel = "www"

// Spec names the public hostnames of a site: the apex domain and, optionally,
// its www variant.
type Spec struct {
	Apex string
	WWW  bool
}

// FQDN returns the apex domain. It panics when Apex is empty, since a Spec is
// only built for deployments that have a custom domain.
func (s Spec) FQDN() *string {
	if s.Apex == "" {
		panic("domain.Spec requires an apex domain")
	}
	return jsii.String(strings.ToLower(strings.TrimSuffix(s.Apex, ".")))
}

// Subdomain returns a fully-qualified subdomain for the given label, e.g.
// "www.example.com".
func (s Spec) Subdomain(label string) *string {
	return jsii.String(label + "." + *s.FQDN())
}

// Names returns every hostname the site answers on, apex first.
func (s Spec) Names() []string {
	names := []string{*s.FQDN()}
	if s.WWW {
		names = append(names, *s.Subdomain(WWWLabel))
	}
	return names
}

// AlternativeNames returns the certificate SANs: every name except the apex.
func (s Spec) AlternativeNames() []*string {
	return lo.Map(s.Names()[1:], func(name string, _ int) *string {
		return jsii.String(name)
	})
}
