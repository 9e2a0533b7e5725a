package cpu

// RawFeatures is the unprocessed result of one hardware interrogation.
// Wide-vector levels need both the CPU bit and the matching OS enable bit.
type RawFeatures struct {
	// Identified is false when the CPU offers no identification leaves
	// (or the build cannot query them).
	Identified bool

	SSE2    bool // CPUID.1:EDX[26]
	SSE42   bool // CPUID.1:ECX[20]
	OSXSAVE bool // CPUID.1:ECX[27], OS uses XSAVE/XRSTOR
	AVX     bool // CPUID.1:ECX[28]
	AVX2    bool // CPUID.7.0:EBX[5]
	AVX512F bool // CPUID.7.0:EBX[16]

	// YMMEnabled is XCR0 bits 1-2 (SSE and AVX state) as saved by the OS.
	YMMEnabled bool
	// ZMMEnabled additionally requires XCR0 bits 5-7 (opmask, ZMM_Hi256, Hi16_ZMM).
	ZMMEnabled bool
}

// registers are the CPUID/XGETBV words the prober reads.
type registers struct {
	maxLeaf uint32 // CPUID.0:EAX
	ecx1    uint32 // CPUID.1:ECX
	edx1    uint32 // CPUID.1:EDX
	ebx7    uint32 // CPUID.7.0:EBX
	xcr0    uint64 // XGETBV(0), only meaningful with OSXSAVE
}

const (
	xcr0YMM = 0x06 // XMM | YMM
	// xcr0ZMM also requires the XMM and YMM bits. Checking only 0xE0 would
	// accept an XCR0 with AVX-512 state but no YMM state, which the OS never
	// sets on real hardware.
	xcr0ZMM = 0xE6 // XMM | YMM | opmask | ZMM_Hi256 | Hi16_ZMM
)

func isSet(word uint32, bit uint) bool {
	return word&(1<<bit) != 0
}

// decode turns register words into feature flags.
func decode(r registers) RawFeatures {
	if r.maxLeaf == 0 {
		return RawFeatures{}
	}

	f := RawFeatures{
		Identified: true,
		SSE2:       isSet(r.edx1, 26),
		SSE42:      isSet(r.ecx1, 20),
		OSXSAVE:    isSet(r.ecx1, 27),
		AVX:        isSet(r.ecx1, 28),
	}

	if f.OSXSAVE {
		f.YMMEnabled = r.xcr0&xcr0YMM == xcr0YMM
		f.ZMMEnabled = r.xcr0&xcr0ZMM == xcr0ZMM
	}

	if r.maxLeaf >= 7 {
		f.AVX2 = isSet(r.ebx7, 5)
		f.AVX512F = isSet(r.ebx7, 16)
	}

	return f
}

// Reduce maps raw feature flags to the highest level whose requirements are
// all met. The checks run from the strongest level down and must stay in this
// order: the AVX family depends on OS enable bits that the SSE levels do not,
// so a machine with AVX reported but YMM state disabled still lands on SSE4.2.
//
// ZMMEnabled is decoded with the full 0xE6 XCR0 mask rather than the upper
// 0xE0 bits alone, so an XCR0 carrying only the AVX-512 state bits does not
// reach AVX-512F.
func Reduce(f RawFeatures) SIMDLevel {
	if !f.Identified {
		return SIMDScalar
	}
	switch {
	case f.AVX && f.AVX512F && f.ZMMEnabled:
		return SIMDAVX512F
	case f.AVX && f.AVX2 && f.YMMEnabled:
		return SIMDAVX2
	case f.AVX && f.YMMEnabled:
		return SIMDAVX
	case f.SSE42:
		return SIMDSSE42
	case f.SSE2:
		return SIMDSSE2
	default:
		return SIMDScalar
	}
}

// Probe interrogates the hardware and returns its SIMD level.
// Every call re-measures; use DetectLevel for the memoized value.
func Probe() SIMDLevel {
	return Reduce(ProbeFeatures())
}
