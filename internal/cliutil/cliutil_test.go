package cliutil

import (
	"crypto/sha1" //nolint:gosec // mirrors production masking
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	t.Setenv("FMCLI_TEST_A", "")
	t.Setenv("FMCLI_TEST_B", "second")

	assert.Equal(t, "second", Env("FMCLI_TEST_A", "FMCLI_TEST_B"))
	assert.Equal(t, "", Env("FMCLI_TEST_A"))
	assert.Equal(t, "fallback", EnvDefault("fallback", "FMCLI_TEST_A"))
	assert.Equal(t, "second", EnvDefault("fallback", "FMCLI_TEST_B"))
}

func TestSafeHeader(t *testing.T) {
	sum := sha1.Sum([]byte("super-secret")) //nolint:gosec // test fixture
	wantDigest := "{SHA1}" + hex.EncodeToString(sum[:])

	name, value := SafeHeader("X-Auth-Token", "super-secret")
	assert.Equal(t, "X-Auth-Token", name)
	assert.Equal(t, wantDigest, value)

	name, value = SafeHeader("Content-Type", "application/json")
	assert.Equal(t, "Content-Type", name)
	assert.Equal(t, "application/json", value)

	_, value = SafeHeader("X-Auth-Token", "")
	assert.Equal(t, "", value)
}

func TestStripVersion(t *testing.T) {
	tests := []struct {
		name        string
		endpoint    string
		wantBase    string
		wantVersion float64
	}{
		{"v1 path", "http://192.168.204.2:18002/v1/", "http://192.168.204.2:18002", 1},
		{"dotted version", "https://fm.example.com/v2.0", "https://fm.example.com", 2.0},
		{"no version", "http://fm.example.com:18002", "http://fm.example.com:18002", 0},
		{"non-version path", "http://fm.example.com/alarms", "http://fm.example.com/alarms", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, version, err := StripVersion(tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, base)
			assert.InDelta(t, tt.wantVersion, version, 0.001)
		})
	}
}

func TestVersionFromURL(t *testing.T) {
	base, version := VersionFromURL("http://fm.example.com/v1", 2)
	assert.Equal(t, "http://fm.example.com", base)
	assert.InDelta(t, 1.0, version, 0.001)

	base, version = VersionFromURL("http://fm.example.com", 2)
	assert.Equal(t, "http://fm.example.com", base)
	assert.InDelta(t, 2.0, version, 0.001)

	base, version = VersionFromURL("", 2)
	assert.Equal(t, "", base)
	assert.InDelta(t, 2.0, version, 0.001)
}
