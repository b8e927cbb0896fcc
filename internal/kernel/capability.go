package kernel

import (
	"os"
	"strings"
)

// Kind identifies a kernel implementation.
type Kind uint8

const (
	// Plain is the portable unrolled implementation.
	Plain Kind = iota
	// FMA accumulates with hardware fused multiply-add.
	FMA
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case FMA:
		return "fma"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "generic":
		return Plain, true
	case "fma":
		return FMA, true
	default:
		return Plain, false
	}
}

// EnvOverride names the environment variable that forces a kernel.
const EnvOverride = "VECMATH_KERNEL"

// Package-level state, written once by the platform init.
var (
	active      Kind
	hasOverride bool
	hasFMA      bool
)

// initCapabilities is called from the platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	active, hasOverride = selectKind(os.Getenv(EnvOverride), hasFMA)
}

// selectKind picks the kernel for an override value and CPU support. It
// reports whether the override was honoured.
func selectKind(override string, fma bool) (Kind, bool) {
	if override != "" {
		if k, ok := ParseKind(override); ok && isAvailable(k, fma) {
			return k, true
		}
		// Invalid override - fall through to auto-detection
	}
	if fma {
		return FMA, false
	}
	return Plain, false
}

func isAvailable(k Kind, fma bool) bool {
	switch k {
	case Plain:
		return true
	case FMA:
		return fma
	default:
		return false
	}
}

// Active returns the kernel in use.
func Active() Kind {
	return active
}

// IsOverridden reports whether VECMATH_KERNEL selected the active kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA reports whether the CPU has a hardware fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
