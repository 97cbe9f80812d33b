// Package ui provides terminal UI components for uartdash's CLI output.
//
// The package includes spinners, tables, and styled text output using the
// Lip Gloss library for consistent terminal styling across all commands.
//
// # Components Overview
//
//	Spinner       - Animated status indicator for long-running operations
//	SpinnerFrames - Braille animation for Bubble Tea models
//	Tables        - Port status and doctor diagnostic tables
//	PortPicker    - Interactive port selection using the Bubbles list
//
// # Color Scheme
//
// Colors are hex values forming an electric synthwave palette:
//
//	ColorSuccess   (neon green)  - Successful operations
//	ColorError     (red-pink)    - Failures and errors
//	ColorWarning   (amber)       - Warnings and skipped items
//	ColorInfo      (cyan)        - Informational messages
//	ColorMuted     (purple-gray) - Secondary text, timing info
//	ColorSecondary (lavender)    - In-progress indicators
//
// Use DisableColors() to switch to monochrome output when piping.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (ringed dot)  - Operation completed successfully
//	SymbolFail     (cross)       - Operation failed
//	SymbolWarning  (triangle)    - Degraded but not fatal
//	SymbolPending  (diamond)     - Not yet started
//	SymbolProgress (filled gem)  - In progress
//	SymbolComplete (filled dot)  - Done (alternative)
//	SymbolSkipped  (circled dash) - Skipped
//
// # Spinner Usage
//
// The Spinner type provides an animated indicator for operations:
//
//	s := ui.NewSpinner("Configuring /dev/ttyAMA0")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
//
// The spinner handles terminal output, clearing lines, and timing display.
// The port dashboard embeds the Bubble Tea spinner directly and only
// borrows SpinnerFrames from here.
package ui
