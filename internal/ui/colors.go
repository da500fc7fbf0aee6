package ui

// ColorPrimary returns the escape code for endpoints and banners.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the escape code for secondary details such as delays.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the escape code for successful outcomes.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the escape code for typed failures.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the escape code for crashes.
func ColorError() string { return GetCurrentTheme().Error }

// ColorInfo returns the escape code for informational text.
func ColorInfo() string { return GetCurrentTheme().Info }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// Paint wraps s in color and a reset. With the no-color theme s is returned
// unchanged.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
