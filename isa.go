package bsonjson

import "github.com/klauspost/cpuid/v2"

// Variant names a CPU feature level that a vectorized transcoder core could
// target.  This package's walk and string escaper are implemented entirely
// in scalar Go, and output is byte-for-byte identical regardless of which
// level the host CPU supports, so Variant exists purely for callers who
// want to log or report the detected level, not to select different code
// paths.
type Variant int

const (
	VariantBaseline Variant = iota
	VariantSSE2
	VariantSSE42
	VariantAVX2
)

func (v Variant) String() string {
	switch v {
	case VariantAVX2:
		return "AVX2"
	case VariantSSE42:
		return "SSE4.2"
	case VariantSSE2:
		return "SSE2"
	default:
		return "Baseline"
	}
}

var detectedVariant Variant

func init() {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		detectedVariant = VariantAVX2
	case cpuid.CPU.Supports(cpuid.SSE42):
		detectedVariant = VariantSSE42
	case cpuid.CPU.Supports(cpuid.SSE2):
		detectedVariant = VariantSSE2
	default:
		detectedVariant = VariantBaseline
	}
}

// DetectedVariant returns the highest CPU feature level detected at process
// startup.  It is informational only.
func DetectedVariant() Variant {
	return detectedVariant
}
