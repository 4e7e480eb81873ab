// Package constants defines shared constants, types, and configuration values
// used throughout the panestack navigation controller.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar forces the internal logger to debug level during Init.
const DebugEnvVar = "PANESTACK_DEBUG"

// ConfigPathEnvVar points Init at a TOML configuration file when Options.ConfigPath is empty.
const ConfigPathEnvVar = "PANESTACK_CONFIG"

// WindowWidthEnvVar and WindowHeightEnvVar override the SDL window size in dev mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Group identifiers with special meaning.
const (
	// NoGroup is the group id of an empty stack.
	NoGroup = 0
	// SheetGroupID marks screens presented through the host's modal sheet presenter.
	SheetGroupID = -2
)

// Split geometry, expressed as fractions of the container width.
const (
	SplitPrimaryWeight   = 0.35 // primary pane weight while split
	SplitSecondaryWeight = 0.65 // secondary pane weight while split
	PeekWeight           = 0.20 // weight of a pane parked just off the leading edge
	PeekOffset           = 0.20 // leading-edge offset of a parked pane, as a fraction of width
	FullWeight           = 1.0
	DragTravel           = 0.65 // share of the width a split drag needs to reach progress 1
	CommitFraction       = 1.0 / 3.0
	StackShift           = 0.3 // layer shift used by non-split push/pop
	StackEnterAlpha      = 0.8 // layer alpha at the start of a non-split push
	ScrimBaseAlpha       = 0x99
)

// Default timing and input thresholds.
const (
	DefaultTransitionDuration = 200 * time.Millisecond
	DefaultMinReleaseDuration = 50 * time.Millisecond
	DefaultVelocityWindow     = 100 * time.Millisecond
	DefaultFlingVelocity      = 3500.0 // px per second
	DefaultSlideThresholdCM   = 0.4
	DefaultDPI                = 160.0
	DefaultShadowRampDP       = 20.0
	DefaultShadowWidthDP      = 8.0
	DefaultScrimMaxOpacity    = 0.8
	DefaultLocale             = "en"
)

// BaselineDPI is the density at which one logical unit equals one pixel.
const BaselineDPI = 160.0
