// Package ui holds the terminal pieces shared by the statusbox commands:
// colors, symbols, the demo screen header, the demo menu, and the plain
// line output of the non-interactive commands.
//
// # Color Scheme
//
// Colors are ANSI codes so they degrade on 16-color terminals:
//
//	ColorSuccess   (green)  - Completed steps
//	ColorError     (red)    - Failures and error states
//	ColorWarning   (yellow) - Skipped steps
//	ColorInfo      (cyan)   - Changed values and counters
//	ColorMuted     (gray)   - Hints and secondary text
//	ColorSecondary (blue)   - Titles and spinners
//
// Use DisableColors() to switch to monochrome output (for --no-color and
// NO_COLOR).
//
// # Symbols
//
//	SymbolSuccess  (checkmark) - Request succeeded
//	SymbolFail     (X)         - Request failed
//	SymbolEmpty    (slashed)   - Request returned nothing
//	SymbolPending  (circle)    - Placeholder row
//	SymbolRetry    (arrow)     - Retry affordance
//
// # Line Output
//
// StatusWriter prints step results for commands like init and config set:
//
//	s := ui.NewStatusWriter(os.Stdout)
//	s.Success("Created .statusbox.yaml")
//	s.Sub("statusbox demo", "try the widgets")
//
// # Bubble Tea Components
//
// MenuModel wraps the bubbles list for the demo picker, and SpinnerFrames
// feeds the bubbles spinner behind every loading indicator.
package ui
