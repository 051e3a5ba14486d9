package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	InitLogger("debug")
	assert.Equal(t, zerolog.DebugLevel, Logger.GetLevel())

	InitLogger("warn")
	assert.Equal(t, zerolog.WarnLevel, Logger.GetLevel())
}

func TestInitLogger_InvalidLevelFallsBack(t *testing.T) {
	InitLogger("chatty")
	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())
}
