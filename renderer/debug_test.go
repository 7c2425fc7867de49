package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDebugMessageSuppressesKnownIDs(t *testing.T) {
	for _, id := range []uint32{131169, 131185, 131218, 131204} {
		msg, ok := formatDebugMessage(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_OTHER, id, gl.DEBUG_SEVERITY_NOTIFICATION, "noise")
		assert.Falsef(t, ok, "id %d should be suppressed", id)
		assert.Empty(t, msg)
	}
}

func TestFormatDebugMessageDecodesLabels(t *testing.T) {
	msg, ok := formatDebugMessage(
		gl.DEBUG_SOURCE_SHADER_COMPILER,
		gl.DEBUG_TYPE_ERROR,
		42,
		gl.DEBUG_SEVERITY_HIGH,
		"something broke",
	)
	require.True(t, ok)
	assert.Contains(t, msg, "Debug message (42): something broke")
	assert.Contains(t, msg, "Source: Shader Compiler")
	assert.Contains(t, msg, "Type: Error")
	assert.Contains(t, msg, "Severity: high")
}

func TestFormatDebugMessageUnknownEnums(t *testing.T) {
	msg, ok := formatDebugMessage(0xdead, 0xbeef, 7, 0xcafe, "odd")
	require.True(t, ok)
	assert.Contains(t, msg, "Source: Unknown")
	assert.Contains(t, msg, "Type: Unknown")
	assert.Contains(t, msg, "Severity: Unknown")
}
