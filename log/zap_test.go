package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	defer func() { Logger = zap.NewNop() }()

	require.NoError(t, InitLogger("debug", true))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger("warn", false))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	assert.Error(t, InitLogger("chatty", false))
}
