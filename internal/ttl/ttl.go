// Package ttl resolves the staleness window for cached exchange rates from
// the environment, the per-user config value, and the built-in default.
package ttl

import (
	"os"
	"strconv"
	"strings"
)

const (
	// EnvVar overrides the configured TTL when set to an integer number of
	// hours.
	EnvVar = "CACHE_TTL_HOURS"

	// DefaultHours is used when nothing else is configured, and also when
	// the resolved value falls outside [MinHours, MaxHours]. Out-of-range
	// values revert to the default rather than clamping to the bound.
	DefaultHours = 24

	MinHours = 1
	MaxHours = 168
)

// ResolveHours returns the effective TTL in hours. Precedence: environment
// override, then the config value (zero means unset), then DefaultHours.
// The environment is re-read on every call so a long-lived process picks up
// changes between invocations.
func ResolveHours(configHours int) int {
	hours := DefaultHours
	if configHours != 0 {
		hours = configHours
	}
	if raw, ok := os.LookupEnv(EnvVar); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			hours = n
		}
	}
	if hours < MinHours || hours > MaxHours {
		return DefaultHours
	}
	return hours
}
