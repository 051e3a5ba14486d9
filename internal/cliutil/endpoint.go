package cliutil

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// versionSegment matches a version path segment such as "v1" or "v2.0".
var versionSegment = regexp.MustCompile(`^v(\d+\.?\d*)$`)

// StripVersion splits an API endpoint into its base URL and the version
// encoded in its path, if any. "http://host:8004/v1" yields
// ("http://host:8004", 1). Endpoints without a version segment are returned
// unchanged with version 0.
func StripVersion(endpoint string) (string, float64, error) {
	endpoint = strings.TrimRight(endpoint, "/")
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", 0, fmt.Errorf("parsing endpoint: %w", err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	m := versionSegment.FindStringSubmatch(path)
	if m == nil {
		return endpoint, 0, nil
	}
	version, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return endpoint, 0, nil
	}
	return u.Scheme + "://" + u.Host, version, nil
}

// VersionFromURL returns the endpoint base and version, falling back to
// fallback when the endpoint is empty or carries no version.
func VersionFromURL(endpoint string, fallback float64) (string, float64) {
	if endpoint == "" {
		return "", fallback
	}
	base, version, err := StripVersion(endpoint)
	if err != nil {
		return endpoint, fallback
	}
	if version == 0 {
		return base, fallback
	}
	return base, version
}
