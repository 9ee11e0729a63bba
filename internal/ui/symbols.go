package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Request succeeded
	SymbolFail    = "✗" // Request failed
	SymbolEmpty   = "∅" // Request succeeded with no data
	SymbolPending = "○" // Placeholder for an item not loaded yet
	SymbolRetry   = "↻" // Retry affordance
	SymbolBullet  = "•"
)
