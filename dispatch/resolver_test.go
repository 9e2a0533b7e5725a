package dispatch

import (
	"os"
	"os/exec"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dynemit/cpu"
)

type sampleFunc func(int) int

func sampleAVX2(x int) int   { return x * 4 }
func sampleSSE2(x int) int   { return x * 2 }
func sampleScalar(x int) int { return x }

// selectSample mirrors a typical operation table: the two widest levels share
// one variant, the 128-bit levels share another.
func selectSample(level cpu.SIMDLevel) sampleFunc {
	switch level {
	case cpu.SIMDAVX512F, cpu.SIMDAVX2:
		return sampleAVX2
	case cpu.SIMDAVX, cpu.SIMDSSE42, cpu.SIMDSSE2:
		return sampleSSE2
	default:
		return sampleScalar
	}
}

func fixedDetector(level cpu.SIMDLevel) *cpu.Detector {
	return cpu.NewDetector(func() cpu.SIMDLevel { return level })
}

func TestResolveSelectsPerLevel(t *testing.T) {
	want := map[cpu.SIMDLevel]int{
		cpu.SIMDScalar:  10,
		cpu.SIMDSSE2:    20,
		cpu.SIMDSSE42:   20,
		cpu.SIMDAVX:     20,
		cpu.SIMDAVX2:    40,
		cpu.SIMDAVX512F: 40,
	}

	for _, level := range cpu.Levels() {
		t.Run(level.String(), func(t *testing.T) {
			r := Resolver[sampleFunc]{Name: "sample", Detector: fixedDetector(level), Select: selectSample}
			fn := r.Resolve()
			require.NotNil(t, fn)
			assert.Equal(t, want[level], fn(10))
		})
	}
}

func TestResolveUsesCachedDetector(t *testing.T) {
	var probes atomic.Int32
	det := cpu.NewDetector(func() cpu.SIMDLevel {
		probes.Add(1)
		return cpu.SIMDSSE42
	})
	r := Resolver[sampleFunc]{Name: "sample", Detector: det, Select: selectSample}

	for i := 0; i < 3; i++ {
		assert.Equal(t, 20, r.Resolve()(10))
	}
	assert.Equal(t, int32(1), probes.Load())
}

func TestResolveDefaultDetector(t *testing.T) {
	r := Resolver[sampleFunc]{Name: "sample", Select: selectSample}
	got := r.Resolve()(10)
	assert.Equal(t, selectSample(cpu.DetectLevel())(10), got)
}

func TestSelectorCoversEveryLevel(t *testing.T) {
	for _, level := range cpu.Levels() {
		assert.False(t, isNil(selectSample(level)), "level %v unmapped", level)
	}
}

func TestIsNil(t *testing.T) {
	var nilFunc sampleFunc
	var nilPtr *int
	assert.True(t, isNil(nil))
	assert.True(t, isNil(nilFunc))
	assert.True(t, isNil(nilPtr))
	assert.False(t, isNil(sampleFunc(sampleScalar)))
	assert.False(t, isNil(0))
}

const trapChildEnv = "DISPATCH_TRAP_CHILD"

// runTrapChild re-executes the test binary running only test, with mode set
// in the environment, and returns its combined output and error.
func runTrapChild(t *testing.T, test, mode string) (string, error) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^"+test+"$", "-test.count=1")
	cmd.Env = append(os.Environ(), trapChildEnv+"="+mode)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestResolveTrapsOnNilVariant(t *testing.T) {
	if os.Getenv(trapChildEnv) == "nil-variant" {
		r := Resolver[sampleFunc]{
			Name:     "broken_op",
			Detector: fixedDetector(cpu.SIMDAVX2),
			Select: func(level cpu.SIMDLevel) sampleFunc {
				if level >= cpu.SIMDAVX2 {
					return nil
				}
				return sampleScalar
			},
		}
		NewFunc(r).Get()
		os.Stdout.WriteString("BOUND-UNEXPECTEDLY\n")
		os.Exit(0)
	}

	out, err := runTrapChild(t, "TestResolveTrapsOnNilVariant", "nil-variant")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "child returned normally:\n%s", out)
	assert.Equal(t, TrapExitCode, exitErr.ExitCode())
	assert.Contains(t, out, "selector returned no variant")
	assert.Contains(t, out, "broken_op")
	assert.NotContains(t, out, "BOUND-UNEXPECTEDLY")
}

func TestResolveTrapsWithoutSelector(t *testing.T) {
	if os.Getenv(trapChildEnv) == "no-selector" {
		defer os.Stdout.WriteString("DEFERRED-RAN\n")
		r := Resolver[sampleFunc]{Name: "unconfigured_op", Detector: fixedDetector(cpu.SIMDScalar)}
		r.Resolve()
		os.Stdout.WriteString("BOUND-UNEXPECTEDLY\n")
		return
	}

	out, err := runTrapChild(t, "TestResolveTrapsWithoutSelector", "no-selector")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "child returned normally:\n%s", out)
	assert.Equal(t, TrapExitCode, exitErr.ExitCode())
	assert.Contains(t, out, "no selector")
	assert.NotContains(t, out, "BOUND-UNEXPECTEDLY")
	assert.NotContains(t, out, "DEFERRED-RAN")
}
