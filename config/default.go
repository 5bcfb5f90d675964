// Package config wires viper to anikit.toml, ANIKIT_* environment variables and the registered defaults.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field documents one configuration key and its default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `anikit config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Env:         f.Env(),
	})
}

// Default is the registry of every known key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, description string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.APIEndpoint, "https://graphql.anilist.co", "GraphQL endpoint requests are sent to")
	register(key.APITimeout, 60, "HTTP timeout in seconds for a single request")
	register(key.APIRequestsPerMinute, 90, "Client-side request budget per minute.\nAniList allows 90, or 30 while degraded. 0 disables pacing")
	register(key.RetryMaxRetries, 3, "How many times a rate limited call is retried. 0 disables retrying")
	register(key.RetryBaseDelay, 1000, "First retry delay in milliseconds")
	register(key.RetryMaxDelay, 30000, "Upper bound for retry delays in milliseconds")
	register(key.RetryExponentialBackoff, true, "Double the delay after every retry")
	register(key.AuthKeyring, true, "Read and store the AniList token in the system keyring")
	register(key.MetricsListen, "", "Address to serve Prometheus metrics on, e.g. :9090.\nEmpty disables the listener")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release after help and version output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(style.Purple),
	"blue":     style.Fg(style.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			if value {
				return style.Fg(style.Green)(strconv.FormatBool(value))
			}
			return style.Fg(style.Red)(strconv.FormatBool(value))
		case string:
			if value == "" {
				return style.Faint(`""`)
			}
			return style.Fg(style.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename .Value }}`))
