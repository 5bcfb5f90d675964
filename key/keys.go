// Package key defines the canonical set of configuration identifiers.
package key

// API transport.
const (
	APIEndpoint          = "api.endpoint"
	APITimeout           = "api.timeout"
	APIRequestsPerMinute = "api.requests_per_minute"
)

// Retry engine tuning.
const (
	RetryMaxRetries         = "retry.max_retries"
	RetryBaseDelay          = "retry.base_delay"
	RetryMaxDelay           = "retry.max_delay"
	RetryExponentialBackoff = "retry.exponential_backoff"
)

// Authentication.
const (
	AuthKeyring = "auth.keyring"
)

// Observability.
const (
	MetricsListen = "metrics.listen"

	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behaviour.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
