package common

// Persisted storage slots. Each store owns exactly one key; the full value
// is always rewritten, never patched.
const (
	// SessionStorageKey holds the serialized profile envelope of the
	// currently logged-in user, or nothing when logged out.
	SessionStorageKey = "prepwyse_user"

	// ThemeStorageKey holds the selected UI theme. It survives logout.
	ThemeStorageKey = "prepwyse_theme"
)
