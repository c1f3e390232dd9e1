package config

import (
	"strings"
	"time"
)

const (
	upstreamBaseURLEnvVar = "UPSTREAM_BASE_URL"
	upstreamTimeoutEnvVar = "UPSTREAM_TIMEOUT"

	defaultUpstreamBaseURL = "https://integrations.lambdaanalytics.co"
	defaultUpstreamTimeout = 15 * time.Second
)

type UpstreamConfig interface {
	GetUpstreamBaseURL() string
	GetUpstreamTimeout() time.Duration
}

type Upstream struct{}

var _ UpstreamConfig = Upstream{}

// GetUpstreamBaseURL returns the integrations API host without a trailing slash
func (Upstream) GetUpstreamBaseURL() string {
	return strings.TrimRight(GetEnv(upstreamBaseURLEnvVar, defaultUpstreamBaseURL), "/")
}

func (Upstream) GetUpstreamTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(upstreamTimeoutEnvVar, ""))
	if err != nil || d <= 0 {
		return defaultUpstreamTimeout
	}
	return d
}
