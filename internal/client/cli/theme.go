package cli

import (
	"context"
	"fmt"

	"github.com/prepwyse/prepwyse/internal/client/prefs"
)

// Theme shows the current theme (no args) or switches to a new one:
// theme [name]
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Current theme: %s\n", a.prefs.Theme())
		fmt.Fprint(a.out, "Available:")
		for _, th := range prefs.Themes() {
			fmt.Fprintf(a.out, " %s", th)
		}
		fmt.Fprintln(a.out)
		return nil
	}

	theme, ok := prefs.ParseTheme(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Unknown theme: %s\n", args[0])
		return nil
	}

	if err := a.prefs.SetTheme(ctx, theme); err != nil {
		fmt.Fprintf(a.out, "warning: theme applied but not saved: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Theme is now %s\n", theme)
	return nil
}
