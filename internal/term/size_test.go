package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDim(t *testing.T) {
	t.Setenv("FMCLI_TEST_COLS", "132")
	assert.Equal(t, 132, envDim("FMCLI_TEST_COLS", 80))

	t.Setenv("FMCLI_TEST_COLS", "not-a-number")
	assert.Equal(t, 80, envDim("FMCLI_TEST_COLS", 80))

	t.Setenv("FMCLI_TEST_COLS", "-3")
	assert.Equal(t, 80, envDim("FMCLI_TEST_COLS", 80))

	t.Setenv("FMCLI_TEST_COLS", "")
	assert.Equal(t, 80, envDim("FMCLI_TEST_COLS", 80))
}
