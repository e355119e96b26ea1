package kernel

import (
	"os"
	"strings"
)

// Mode selects which specialized kernels are active.
type Mode uint8

const (
	// Generic disables all specialization.
	Generic Mode = iota
	// Gonum routes float64 columns through gonum/floats.
	Gonum
	// FMA is Gonum plus math.FMA for fused products. Opt-in only.
	FMA
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case Generic:
		return "generic"
	case Gonum:
		return "gonum"
	case FMA:
		return "fma"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "gonum":
		return Gonum, true
	case "fma":
		return FMA, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable that forces a mode.
const EnvOverride = "UNITVEC_KERNEL"

var (
	activeMode  Mode
	hasOverride bool

	// set by platform-specific init
	hasFMA bool
)

func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if m, ok := ParseMode(override); ok {
			hasOverride = true
			if isModeAvailable(m) {
				activeMode = m
				return
			}
		}
	}

	activeMode = selectBestMode()
}

func isModeAvailable(m Mode) bool {
	switch m {
	case Generic, Gonum:
		return true
	case FMA:
		return hasFMA
	default:
		return false
	}
}

// selectBestMode never returns FMA; fused single-rounding kernels are opt-in.
func selectBestMode() Mode {
	return Gonum
}

// ActiveMode returns the currently active mode.
func ActiveMode() Mode {
	return activeMode
}

// IsOverridden returns true if UNITVEC_KERNEL was set to a valid mode name.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA returns true if the CPU executes fused multiply-add in hardware.
func HasFMA() bool {
	return hasFMA
}

// Use forces mode m and returns a function restoring the previous mode.
// Unavailable modes are ignored. Not safe for concurrent use with kernels;
// intended for tests and benchmarks.
func Use(m Mode) (restore func()) {
	prev := activeMode
	if isModeAvailable(m) {
		activeMode = m
	}
	return func() { activeMode = prev }
}
