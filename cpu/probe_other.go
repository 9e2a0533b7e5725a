//go:build !(386 || amd64) || !gc || purego

package cpu

// ProbeFeatures reports no identification facility on this build, which
// reduces to SIMDScalar.
func ProbeFeatures() RawFeatures {
	return RawFeatures{}
}
