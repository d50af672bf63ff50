package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Colors
var (
	colorPage   = color.NRGBA{R: 0x6A, G: 0x1E, B: 0x55, A: 255}
	colorButton = color.NRGBA{R: 0xA6, G: 0x4D, B: 0x79, A: 255}
	colorCard   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// appTheme recolours the default theme with the app palette.
// "light" and "dark" pin the variant; "system" follows the OS.
type appTheme struct {
	variant      fyne.ThemeVariant
	followSystem bool
}

var _ fyne.Theme = (*appTheme)(nil)

func newAppTheme(mode string) *appTheme {
	switch mode {
	case "dark":
		return &appTheme{variant: theme.VariantDark}
	case "system":
		return &appTheme{followSystem: true}
	default:
		return &appTheme{variant: theme.VariantLight}
	}
}

func (t *appTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.followSystem {
		variant = t.variant
	}

	switch name {
	case theme.ColorNameBackground:
		return colorPage
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorButton
	}
	return theme.DefaultTheme().Color(name, variant)
}

// cardColor is the fill behind each panel
func (t *appTheme) cardColor() color.Color {
	if !t.followSystem && t.variant == theme.VariantDark {
		return theme.DefaultTheme().Color(theme.ColorNameOverlayBackground, theme.VariantDark)
	}
	return colorCard
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
