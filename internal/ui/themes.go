// Package ui provides theme and color support for the application's user
// interface. It defines color schemes and exposes ANSI escape code helpers so
// the CLI, REPL, and usage text stay consistently styled without coupling
// business logic to presentation.
package ui

import (
	"os"
	"sync"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}
)

var (
	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// InitTheme selects the active theme based on the no-color preference and the
// NO_COLOR environment variable (https://no-color.org). It must be called
// once during application startup, before any colored output is produced.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMu.Lock()
	defer themeMu.Unlock()
	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// GetCurrentTheme returns the active theme.
//
// Returns:
//   - Theme: The currently selected theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// Convenience accessors for the most frequently used escape codes. They read
// the active theme so callers automatically honor the no-color setting.

// ColorGreen returns the success color escape code of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color escape code of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color escape code of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary accent color escape code of the active theme.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color escape code of the active theme.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// CLIColorProvider adapts the active theme to the apperrors.ColorProvider
// interface without importing that package.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ColorRed() }
func (CLIColorProvider) Yellow() string { return ColorYellow() }
func (CLIColorProvider) Reset() string  { return ColorReset() }
