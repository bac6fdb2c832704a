package prefs

// Theme is the closed set of UI color schemes.
type Theme string

const (
	// ThemeEgyptianNight is the default dark scheme.
	ThemeEgyptianNight Theme = "egyptian-night"
	// ThemeChaiSpice is the warm alternative scheme.
	ThemeChaiSpice Theme = "chai-spice"
)

// DefaultTheme is used when nothing valid has been persisted yet.
const DefaultTheme = ThemeEgyptianNight

// ParseTheme reports whether s names a known theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeEgyptianNight, ThemeChaiSpice:
		return Theme(s), true
	}
	return "", false
}

// Themes lists every selectable theme, for the settings UI.
func Themes() []Theme {
	return []Theme{ThemeEgyptianNight, ThemeChaiSpice}
}
