package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvironmentVariables is the raw deployment input as the CI job exports it.
// WWWRedirect is kept as a string: only the literal "true" enables it, any
// other value (including "yes" or "1") means false.
type EnvironmentVariables struct {
	ProjectSlug  string `env:"PROJECT_SLUG" envDefault:"my-project"`
	DomainName   string `env:"DOMAIN_NAME"`
	WWWRedirect  string `env:"WWW_REDIRECT"`
	BusinessName string `env:"BUSINESS_NAME" envDefault:"My Business"`
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccountID string `env:"AWS_ACCOUNT_ID"`
}

// GetEnvironmentVariables parses T from the given environment map. A nil map
// means the process environment.
func GetEnvironmentVariables[T any](environ map[string]string) (T, error) {
	var envObj T

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(&envObj, opts); err != nil {
		return envObj, fmt.Errorf("parsing environment variables: %w", err)
	}

	return envObj, nil
}

// DeploymentConfig converts the raw variables into the immutable record the
// stacks consume. The domain is lowercased and loses any trailing dot, so
// every derived name (aliases, records, WebsiteURL) agrees on one spelling.
func (v EnvironmentVariables) DeploymentConfig() DeploymentConfig {
	return DeploymentConfig{
		ProjectSlug:  v.ProjectSlug,
		DomainName:   normalizeDomain(v.DomainName),
		WWWRedirect:  v.WWWRedirect == "true",
		BusinessName: v.BusinessName,
		AWSRegion:    v.AWSRegion,
		AWSAccountID: v.AWSAccountID,
	}
}

func normalizeDomain(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
}
