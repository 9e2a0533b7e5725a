package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	r := NewReport()

	assert.Equal(t, runtime.GOARCH, r.Architecture)
	assert.Equal(t, Probe(), r.Probed)
	assert.Equal(t, r.Probed.String(), r.ProbedName)
	assert.Equal(t, DetectLevel(), r.Active)
	assert.LessOrEqual(t, r.Active, r.Probed)
	assert.Equal(t, ProbeFeatures(), r.Raw)
}
