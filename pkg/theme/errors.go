package theme

import "errors"

var (
	// ErrNoThemeData is returned when a theme resolves to zero fragments
	// across every role, even after falling back to the default theme.
	ErrNoThemeData = errors.New("no fragment data found for theme")

	// ErrInvalidThemeName is returned for empty or path-traversing theme
	// names.
	ErrInvalidThemeName = errors.New("invalid theme name")
)
