package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestCompactThemeSizes(t *testing.T) {
	ct := NewCompactTheme()
	def := theme.DefaultTheme()

	tests := []struct {
		name fyne.ThemeSizeName
		size float32
	}{
		{theme.SizeNamePadding, 3},
		{theme.SizeNameText, 13},
		{theme.SizeNameHeadingText, 16},
		{theme.SizeNameScrollBar, 12},
	}

	for _, tt := range tests {
		if got := ct.Size(tt.name); got != tt.size {
			t.Errorf("Size(%s) = %v, want %v", tt.name, got, tt.size)
		}
	}

	// Sizes without a compact override fall through to the default theme.
	if got := ct.Size(theme.SizeNameInlineIcon); got != def.Size(theme.SizeNameInlineIcon) {
		t.Errorf("inline icon size = %v, want default", got)
	}
}

func TestCompactThemeColorFallthrough(t *testing.T) {
	ct := NewCompactTheme()
	def := theme.DefaultTheme()

	// Only the colors the widgets surface are overridden; semantic colors
	// stay on the default palette.
	for _, name := range []fyne.ThemeColorName{
		theme.ColorNameSuccess,
		theme.ColorNameError,
		theme.ColorNameWarning,
		theme.ColorNameHover,
	} {
		if got, want := ct.Color(name, theme.VariantDark), def.Color(name, theme.VariantDark); got != want {
			t.Errorf("Color(%s) = %v, want default %v", name, got, want)
		}
	}
}
