// Package cliutil holds small helpers shared by CLI command handlers:
// environment lookups, sensitive-header masking, and endpoint parsing.
package cliutil

import "os"

// Env returns the first non-empty value among the named environment
// variables, or "" when none are set.
func Env(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// EnvDefault is Env with a fallback value when no variable is set.
func EnvDefault(fallback string, names ...string) string {
	if v := Env(names...); v != "" {
		return v
	}
	return fallback
}
