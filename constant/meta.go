// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "anikit"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to the AniList API.
	UserAgent = App + "/" + Version + " (+https://github.com/anisan-cli/anikit)"

	// Repository is the GitHub owner/name pair used for release discovery.
	Repository = "anisan-cli/anikit"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
