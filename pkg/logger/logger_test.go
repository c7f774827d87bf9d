package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetWithoutInitIsSilent(t *testing.T) {
	globalLogger = nil
	l := Get()
	require.NotNil(t, l)
	l.Infow("dropped", "k", "v")
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("debug", "development"))
	assert.True(t, Get().Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init("not-a-level", "production"))
	assert.False(t, Get().Desugar().Core().Enabled(zap.DebugLevel))
	assert.True(t, Get().Desugar().Core().Enabled(zap.InfoLevel))
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := New(zap.New(core)).With("run", "abc")
	l.Infow("generated", "assets", 10)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "generated", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["run"])
	assert.EqualValues(t, 10, entry.ContextMap()["assets"])
}
