package bench

import (
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-dynemit/cpu"
)

const (
	maxCPUNameLen  = 80
	unknownCPUName = "unknown_cpu"
)

// coreCountPatterns are removed from CPU brand strings together with the
// digits, spaces and hyphens right before them.
var coreCountPatterns = []string{"-core", " core", "processor"}

// SanitizeCPUName turns a CPU brand string into a file-name fragment, e.g.
// "AMD Ryzen 9 7950X 16-Core Processor" becomes "amd_ryzen_9_7950x".
func SanitizeCPUName(brand string) string {
	name := []byte(strings.TrimSpace(brand))
	for _, p := range coreCountPatterns {
		pos := strings.Index(lowerASCII(name), p)
		if pos < 0 {
			continue
		}
		start := pos
		for start > 0 && isCountByte(name[start-1]) {
			start--
		}
		end := pos + len(p)
		for end < len(name) && name[end] == ' ' {
			end++
		}
		name = append(name[:start], name[end:]...)
	}

	var b strings.Builder
	for _, c := range name {
		switch {
		case isAlnum(c):
			b.WriteByte(toLower(c))
		case c == ' ' || c == '-' || c == '(' || c == ')' || c == '@':
			appendSep(&b)
		}
	}

	out := strings.TrimRight(b.String(), "_")
	if len(out) > maxCPUNameLen {
		out = out[:maxCPUNameLen]
	}
	if out == "" {
		return unknownCPUName
	}
	return out
}

// SanitizeLevelName lowercases a level name and maps '-' and '.' to '_':
// "AVX-512F" becomes "avx_512f".
func SanitizeLevelName(level cpu.SIMDLevel) string {
	var b strings.Builder
	for _, c := range []byte(level.String()) {
		switch {
		case isAlnum(c):
			b.WriteByte(toLower(c))
		case c == '-' || c == '.':
			appendSep(&b)
		}
	}
	return b.String()
}

// AutoFilename returns dir/results_<cpu>_<simd>.csv.
func AutoFilename(dir, brand string, level cpu.SIMDLevel) string {
	return filepath.Join(dir, "results_"+SanitizeCPUName(brand)+"_"+SanitizeLevelName(level)+".csv")
}

func appendSep(b *strings.Builder) {
	s := b.String()
	if len(s) > 0 && s[len(s)-1] != '_' {
		b.WriteByte('_')
	}
}

func isCountByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == ' ' || c == '-'
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// lowerASCII lowercases only ASCII letters so byte offsets stay valid.
func lowerASCII(s []byte) string {
	out := make([]byte, len(s))
	for i, c := range s {
		out[i] = toLower(c)
	}
	return string(out)
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
