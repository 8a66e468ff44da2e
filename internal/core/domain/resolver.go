package domain

import "go.trai.ch/zerr"

// RecommendationType tunes how the primary resolver picks package versions.
type RecommendationType string

const (
	// RecommendationLatest prefers the newest releases.
	RecommendationLatest RecommendationType = "latest"
	// RecommendationPerformance prefers the fastest known stacks.
	RecommendationPerformance RecommendationType = "performance"
	// RecommendationSecurity prefers stacks without known vulnerabilities.
	RecommendationSecurity RecommendationType = "security"
	// RecommendationStable prefers well-tested stacks.
	RecommendationStable RecommendationType = "stable"
)

// RecommendationTypes lists every supported recommendation type.
func RecommendationTypes() []RecommendationType {
	return []RecommendationType{
		RecommendationLatest,
		RecommendationPerformance,
		RecommendationSecurity,
		RecommendationStable,
	}
}

// ParseRecommendationType validates s as a recommendation type.
func ParseRecommendationType(s string) (RecommendationType, error) {
	for _, rt := range RecommendationTypes() {
		if string(rt) == s {
			return rt, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownRecommendationType, "failed to parse recommendation type"), "value", s)
}

// OperatingSystem identifies the base image of a runtime environment.
type OperatingSystem struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

// RuntimeEnvironment describes an environment the resolver targets.
type RuntimeEnvironment struct {
	Name               string             `yaml:"name" json:"name"`
	OperatingSystem    OperatingSystem    `yaml:"operating_system" json:"operating_system"`
	PythonVersion      string             `yaml:"python_version" json:"python_version"`
	RecommendationType RecommendationType `yaml:"recommendation_type" json:"recommendation_type"`
}

// ResolverConfig is the configuration submitted to the primary resolver.
type ResolverConfig struct {
	Host                string               `yaml:"host" json:"host"`
	TLSVerify           bool                 `yaml:"tls_verify" json:"tls_verify"`
	RequirementsFormat  string               `yaml:"requirements_format" json:"requirements_format"`
	RuntimeEnvironments []RuntimeEnvironment `yaml:"runtime_environments" json:"runtime_environments"`
}

// Clone returns a deep copy of the config.
func (c ResolverConfig) Clone() ResolverConfig {
	out := c
	if c.RuntimeEnvironments != nil {
		out.RuntimeEnvironments = make([]RuntimeEnvironment, len(c.RuntimeEnvironments))
		copy(out.RuntimeEnvironments, c.RuntimeEnvironments)
	}
	return out
}

// WithRecommendationType returns a copy of the config whose first runtime
// environment uses rt. Configs without runtime environments are returned unchanged.
func (c ResolverConfig) WithRecommendationType(rt RecommendationType) ResolverConfig {
	out := c.Clone()
	if len(out.RuntimeEnvironments) > 0 {
		out.RuntimeEnvironments[0].RecommendationType = rt
	}
	return out
}

// AdviseResult is the outcome of a primary resolver run.
type AdviseResult struct {
	Error            bool
	Requirements     RequirementsSpec
	RequirementsLock LockedRequirements
}

// FallbackResult is the outcome of a secondary resolver run.
type FallbackResult struct {
	Error            bool
	RequirementsLock LockedRequirements
}
