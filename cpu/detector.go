package cpu

import (
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-dynemit/internal/logging"
)

// unresolved marks a Detector that has not published a level yet.
// It must differ from every valid SIMDLevel.
const unresolved = -1

const (
	// EnvNoSIMD forces SIMDScalar when set to a true value.
	EnvNoSIMD = "DYNEMIT_NO_SIMD"

	// EnvMaxLevel caps the detected level (e.g. "avx2", "sse4.2").
	EnvMaxLevel = "DYNEMIT_MAX_LEVEL"
)

// Detector memoizes a probe result. The first Level call runs the probe and
// publishes the level with a single compare-and-swap; concurrent first callers
// may probe redundantly but all of them return the published value.
// A Detector must be created with NewDetector.
type Detector struct {
	level atomic.Int32
	probe func() SIMDLevel
}

// NewDetector returns an unresolved detector backed by probe.
// probe must be deterministic for a given machine.
func NewDetector(probe func() SIMDLevel) *Detector {
	d := &Detector{probe: probe}
	d.level.Store(unresolved)
	return d
}

// Level returns the memoized level, probing on first use.
func (d *Detector) Level() SIMDLevel {
	if l := d.level.Load(); l != unresolved {
		return SIMDLevel(l)
	}

	start := time.Now()
	detected := d.probe()
	if !detected.Valid() {
		detected = SIMDScalar
	}

	if d.level.CompareAndSwap(unresolved, int32(detected)) {
		logging.WithComponent("cpu").
			WithField("simd_level", detected.String()).
			WithField("probe_time", time.Since(start)).
			Debug("SIMD level resolved")
		return detected
	}
	return SIMDLevel(d.level.Load())
}

// Resolved reports whether the level has been published.
func (d *Detector) Resolved() bool {
	return d.level.Load() != unresolved
}

// Reset returns the detector to the unresolved state.
// Intended for tests; production code never re-detects.
func (d *Detector) Reset() {
	d.level.Store(unresolved)
}

var defaultDetector = NewDetector(probeWithEnv)

// Default returns the process-wide detector used by all dispatched operations.
func Default() *Detector {
	return defaultDetector
}

// DetectLevel returns the process-wide SIMD level.
// Detection runs once; the result never changes afterwards.
func DetectLevel() SIMDLevel {
	return defaultDetector.Level()
}

// probeWithEnv is Probe limited by the DYNEMIT_NO_SIMD and
// DYNEMIT_MAX_LEVEL environment variables.
func probeWithEnv() SIMDLevel {
	detected := Probe()
	capped := capLevel(detected, envLimit())
	if capped != detected {
		logging.WithComponent("cpu").
			WithField("detected", detected.String()).
			WithField("capped", capped.String()).
			Info("SIMD level limited by environment")
	}
	return capped
}

// envLimit returns the highest level the environment allows.
func envLimit() SIMDLevel {
	if noSIMDEnv() {
		return SIMDScalar
	}
	if val := os.Getenv(EnvMaxLevel); val != "" {
		l, err := ParseLevel(val)
		if err != nil {
			logging.WithComponent("cpu").
				WithField("value", val).
				Warn("ignoring invalid " + EnvMaxLevel)
			return MaxLevel
		}
		return l
	}
	return MaxLevel
}

// noSIMDEnv checks DYNEMIT_NO_SIMD. Any non-empty value that does not parse as
// a boolean counts as true.
func noSIMDEnv() bool {
	val := os.Getenv(EnvNoSIMD)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func capLevel(level, limit SIMDLevel) SIMDLevel {
	if level > limit {
		return limit
	}
	return level
}
