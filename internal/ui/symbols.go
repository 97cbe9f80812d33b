package ui

// Unicode symbols for status indicators. Cyber glyph set matching the
// synthwave palette.
const (
	SymbolSuccess  = "◉" // Operation completed successfully
	SymbolFail     = "✕" // Operation failed
	SymbolWarning  = "⚠" // Degraded but not fatal
	SymbolPending  = "◇" // Not yet started
	SymbolProgress = "◆" // In progress
	SymbolComplete = "●" // Done (alternative to success)
	SymbolSkipped  = "⊖" // Skipped
)
