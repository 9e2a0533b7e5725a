package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultsToWarn(t *testing.T) {
	l := Get()
	require.NotNil(t, l)
	assert.Same(t, l, Get())
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init("debug", "json", &buf))
	t.Cleanup(func() {
		_ = Init("warn", "text", os.Stderr)
	})

	WithComponent("cpu").WithField("simd_level", "AVX2").Debug("detected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cpu", entry["component"])
	assert.Equal(t, "AVX2", entry["simd_level"])
	assert.Equal(t, "detected", entry["msg"])
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())
}

func TestInitRejectsBadInput(t *testing.T) {
	assert.Error(t, Init("loud", "text", nil))
	assert.Error(t, Init("info", "xml", nil))
}
