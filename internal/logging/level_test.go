package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelSwitch(t *testing.T) {
	var buf bytes.Buffer
	logger, sw := NewSwitchable(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})
	child := logger.With().Str("component", "surface").Logger()

	child.Debug().Msg("first")
	assert.Empty(t, buf.String())

	sw.Set(zerolog.DebugLevel)
	child.Debug().Msg("second")
	assert.Contains(t, buf.String(), "second")

	buf.Reset()
	sw.Set(zerolog.Disabled)
	child.Error().Msg("third")
	assert.Empty(t, strings.TrimSpace(buf.String()))
	assert.Equal(t, zerolog.Disabled, sw.Level())
}
