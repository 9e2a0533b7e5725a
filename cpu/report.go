package cpu

import (
	"runtime"

	cpuidv2 "github.com/klauspost/cpuid/v2"
	xcpu "golang.org/x/sys/cpu"
)

// Report is a diagnostic snapshot of the machine. It is never consulted for
// dispatch; the dynemit command prints it and benchmark file names use Brand.
type Report struct {
	Architecture string      `json:"architecture" yaml:"architecture"`
	Brand        string      `json:"brand" yaml:"brand"`
	Vendor       string      `json:"vendor" yaml:"vendor"`
	PhysicalCore int         `json:"physical_cores" yaml:"physical_cores"`
	LogicalCores int         `json:"logical_cores" yaml:"logical_cores"`
	Probed       SIMDLevel   `json:"-" yaml:"-"`
	ProbedName   string      `json:"probed_level" yaml:"probed_level"`
	Active       SIMDLevel   `json:"-" yaml:"-"`
	ActiveName   string      `json:"active_level" yaml:"active_level"`
	Raw          RawFeatures `json:"raw" yaml:"raw"`
	System       SystemFlags `json:"system" yaml:"system"`
}

// SystemFlags are the OS-gated flags reported by golang.org/x/sys/cpu.
// They serve as an independent cross-check of the prober.
type SystemFlags struct {
	SSE2    bool `json:"sse2" yaml:"sse2"`
	SSE42   bool `json:"sse42" yaml:"sse42"`
	OSXSAVE bool `json:"osxsave" yaml:"osxsave"`
	AVX     bool `json:"avx" yaml:"avx"`
	AVX2    bool `json:"avx2" yaml:"avx2"`
	AVX512F bool `json:"avx512f" yaml:"avx512f"`
	ASIMD   bool `json:"asimd" yaml:"asimd"`
}

// BrandName returns the CPU model string, or "" when unavailable.
func BrandName() string {
	return cpuidv2.CPU.BrandName
}

// SystemFeatures returns the golang.org/x/sys/cpu view of the machine.
func SystemFeatures() SystemFlags {
	return SystemFlags{
		SSE2:    xcpu.X86.HasSSE2,
		SSE42:   xcpu.X86.HasSSE42,
		OSXSAVE: xcpu.X86.HasOSXSAVE,
		AVX:     xcpu.X86.HasAVX,
		AVX2:    xcpu.X86.HasAVX2,
		AVX512F: xcpu.X86.HasAVX512F,
		ASIMD:   xcpu.ARM64.HasASIMD,
	}
}

// NewReport probes the machine and collects a Report. Active is the
// process-wide level, which may sit below Probed when capped by environment.
func NewReport() Report {
	raw := ProbeFeatures()
	probed := Reduce(raw)
	active := DetectLevel()
	return Report{
		Architecture: runtime.GOARCH,
		Brand:        BrandName(),
		Vendor:       cpuidv2.CPU.VendorString,
		PhysicalCore: cpuidv2.CPU.PhysicalCores,
		LogicalCores: cpuidv2.CPU.LogicalCores,
		Probed:       probed,
		ProbedName:   probed.String(),
		Active:       active,
		ActiveName:   active.String(),
		Raw:          raw,
		System:       SystemFeatures(),
	}
}
