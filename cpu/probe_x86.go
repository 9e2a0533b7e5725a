//go:build (386 || amd64) && gc && !purego

package cpu

// cpuid executes the CPUID instruction (implemented in cpuid_x86.s).
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

// xgetbv reads XCR0 (implemented in cpuid_x86.s).
// Only valid once CPUID reports OSXSAVE.
func xgetbv() (eax, edx uint32)

// ProbeFeatures queries CPUID and XGETBV and returns the raw feature flags.
func ProbeFeatures() RawFeatures {
	return decode(readRegisters())
}

func readRegisters() registers {
	var r registers

	r.maxLeaf, _, _, _ = cpuid(0, 0)
	if r.maxLeaf == 0 {
		return r
	}

	_, _, r.ecx1, r.edx1 = cpuid(1, 0)

	if isSet(r.ecx1, 27) {
		lo, hi := xgetbv()
		r.xcr0 = uint64(hi)<<32 | uint64(lo)
	}

	if r.maxLeaf >= 7 {
		_, r.ebx7, _, _ = cpuid(7, 0)
	}

	return r
}
