package cliutil

import (
	"crypto/sha1" //nolint:gosec // masking for display, not integrity
	"encoding/hex"
)

// sensitiveHeaders are request headers whose values must never be shown in
// debug output.
var sensitiveHeaders = map[string]bool{
	"X-Auth-Token": true,
}

// SafeHeader returns the header pair with sensitive values replaced by a
// SHA1 digest, so debug logs can correlate tokens without leaking them.
func SafeHeader(name, value string) (string, string) {
	if value == "" || !sensitiveHeaders[name] {
		return name, value
	}
	sum := sha1.Sum([]byte(value)) //nolint:gosec // see above
	return name, "{SHA1}" + hex.EncodeToString(sum[:])
}
