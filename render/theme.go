package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regroup/config"
)

// Theme is the style palette shared by all renderers
type Theme struct {
	Name string

	Base      tcell.Style
	Title     tcell.Style
	Tab       tcell.Style
	TabActive tcell.Style
	Help      tcell.Style
	Frame     tcell.Style
	Pulse     tcell.Style
	Glow      tcell.Style

	Token    tcell.Style
	Hundreds tcell.Style
	Tens     tcell.Style
	Ones     tcell.Style
	Selected tcell.Style
	Frog     tcell.Style
	Tick     tcell.Style

	Button         tcell.Style
	ButtonDisabled tcell.Style
	ButtonKey      tcell.Style
	Toggle         tcell.Style
	ToggleOn       tcell.Style

	Total    tcell.Style
	Work     tcell.Style
	Caption  tcell.Style
	Progress tcell.Style

	Status    tcell.Style
	StatusKey tcell.Style
	Muted     tcell.Style
	Unmuted   tcell.Style
	Warning   tcell.Style
}

// RGB palette, Tokyo Night based
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbForeground = tcell.NewRGBColor(192, 202, 245)
	RgbDim        = tcell.NewRGBColor(86, 95, 137)
	RgbAccent     = tcell.NewRGBColor(122, 162, 247)
	RgbHundreds   = tcell.NewRGBColor(187, 154, 247)
	RgbTens       = tcell.NewRGBColor(255, 158, 100)
	RgbOnes       = tcell.NewRGBColor(158, 206, 106)
	RgbCookie     = tcell.NewRGBColor(224, 175, 104)
	RgbPulse      = tcell.NewRGBColor(247, 118, 142)
	RgbGlow       = tcell.NewRGBColor(255, 255, 160)
	RgbStatusBar  = tcell.NewRGBColor(36, 40, 59)
	RgbMuted      = tcell.NewRGBColor(255, 0, 0)
	RgbUnmuted    = tcell.NewRGBColor(0, 200, 0)
)

// DefaultTheme is the colored palette
func DefaultTheme() *Theme {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
	return &Theme{
		Name:      config.ThemeDefault,
		Base:      base,
		Title:     base.Foreground(RgbAccent).Bold(true),
		Tab:       base.Foreground(RgbDim),
		TabActive: base.Background(RgbAccent).Foreground(RgbBackground).Bold(true),
		Help:      base.Foreground(RgbDim).Italic(true),
		Frame:     base.Foreground(RgbDim),
		Pulse:     base.Foreground(RgbPulse).Bold(true),
		Glow:      base.Foreground(RgbGlow).Bold(true),

		Token:    base.Foreground(RgbCookie),
		Hundreds: base.Foreground(RgbHundreds),
		Tens:     base.Foreground(RgbTens),
		Ones:     base.Foreground(RgbOnes),
		Selected: base.Background(RgbDim),
		Frog:     base.Foreground(RgbOnes),
		Tick:     base.Foreground(RgbDim),

		Button:         base.Foreground(RgbForeground),
		ButtonDisabled: base.Foreground(RgbDim).Dim(true),
		ButtonKey:      base.Foreground(RgbAccent).Bold(true),
		Toggle:         base.Foreground(RgbDim),
		ToggleOn:       base.Foreground(RgbOnes).Bold(true),

		Total:    base.Bold(true),
		Work:     base.Foreground(RgbTens),
		Caption:  base.Foreground(RgbDim),
		Progress: base.Foreground(RgbPulse),

		Status:    base.Background(RgbStatusBar),
		StatusKey: base.Background(RgbStatusBar).Foreground(RgbAccent),
		Muted:     base.Background(RgbMuted).Foreground(tcell.ColorWhite),
		Unmuted:   base.Background(RgbUnmuted).Foreground(tcell.ColorBlack),
		Warning:   base.Foreground(RgbPulse).Bold(true),
	}
}

// MonoTheme uses attributes only, for terminals without color
func MonoTheme() *Theme {
	base := tcell.StyleDefault
	return &Theme{
		Name:      config.ThemeMono,
		Base:      base,
		Title:     base.Bold(true),
		Tab:       base,
		TabActive: base.Reverse(true),
		Help:      base.Dim(true),
		Frame:     base,
		Pulse:     base.Bold(true).Blink(true),
		Glow:      base.Bold(true),

		Token:    base,
		Hundreds: base,
		Tens:     base,
		Ones:     base,
		Selected: base.Reverse(true),
		Frog:     base.Bold(true),
		Tick:     base,

		Button:         base,
		ButtonDisabled: base.Dim(true),
		ButtonKey:      base.Bold(true),
		Toggle:         base,
		ToggleOn:       base.Bold(true),

		Total:    base.Bold(true),
		Work:     base.Underline(true),
		Caption:  base.Dim(true),
		Progress: base.Bold(true),

		Status:    base.Reverse(true),
		StatusKey: base.Reverse(true).Bold(true),
		Muted:     base.Reverse(true),
		Unmuted:   base,
		Warning:   base.Bold(true),
	}
}

// ThemeFor returns the theme with the given name, falling back to default
func ThemeFor(name string) *Theme {
	if name == config.ThemeMono {
		return MonoTheme()
	}
	return DefaultTheme()
}
