package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// EdgeCertificateRegion is where CloudFront reads viewer certificates from.
// It does not follow AWSRegion.
const EdgeCertificateRegion = "us-east-1"

// DeploymentConfig is built once per deploy and never mutated afterwards.
// Every stack and construct receives it explicitly.
type DeploymentConfig struct {
	ProjectSlug  string `validate:"required,slug,max=42"`
	DomainName   string `validate:"omitempty,fqdn"`
	WWWRedirect  bool
	BusinessName string `validate:"required"`
	AWSRegion    string `validate:"required"`
	AWSAccountID string `validate:"required,numeric,len=12"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// bucket names are derived from the slug, so it has to be S3-safe
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the config before anything is handed to CDK.
func (c DeploymentConfig) Validate() error {
	if c.AWSAccountID == "" {
		return ErrMissingAccountID
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// HasDomain reports whether the custom-domain resources should exist.
func (c DeploymentConfig) HasDomain() bool {
	return c.DomainName != ""
}

// ServesWWW reports whether www.<domain> is provisioned. WWWRedirect without
// a domain is ignored.
func (c DeploymentConfig) ServesWWW() bool {
	return c.HasDomain() && c.WWWRedirect
}

// BucketName is unique per account because S3 names are global.
func (c DeploymentConfig) BucketName() string {
	return fmt.Sprintf("%s-website-%s", c.ProjectSlug, c.AWSAccountID)
}

func (c DeploymentConfig) FunctionName() string {
	return c.ProjectSlug + "-trailing-slash"
}

func (c DeploymentConfig) DefaultStackName() string {
	return c.ProjectSlug + "-stack"
}

// ExportName prefixes a CloudFormation export with the project slug.
func (c DeploymentConfig) ExportName(suffix string) string {
	return c.ProjectSlug + "-" + suffix
}

// WebsiteURL is the public URL when a custom domain is configured.
func (c DeploymentConfig) WebsiteURL() string {
	if !c.HasDomain() {
		return ""
	}
	return "https://" + c.DomainName
}

// Load reads the deployment config from environ (nil for the process
// environment) and validates it.
func Load(environ map[string]string) (DeploymentConfig, error) {
	vars, err := GetEnvironmentVariables[EnvironmentVariables](environ)
	if err != nil {
		return DeploymentConfig{}, err
	}

	cfg := vars.DeploymentConfig()
	if err := cfg.Validate(); err != nil {
		return DeploymentConfig{}, err
	}

	logger := zap.L().Named("config")
	if cfg.WWWRedirect && !cfg.HasDomain() {
		logger.Warn("WWW_REDIRECT is set without DOMAIN_NAME; no www resources will be created")
	}
	logger.Info("Loaded deployment config",
		zap.String("projectSlug", cfg.ProjectSlug),
		zap.String("domainName", cfg.DomainName),
		zap.Bool("wwwRedirect", cfg.ServesWWW()),
		zap.String("region", cfg.AWSRegion),
		zap.String("account", cfg.AWSAccountID),
	)

	return cfg, nil
}
