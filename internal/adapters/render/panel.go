package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/okian/trophy/internal/domain/trophy"
)

// Panel defaults.
const (
	DefaultPanelSize    = 110
	DefaultNoBackground = false
	DefaultNoFrame      = false
)

const fontFamily = "Segoe UI,Helvetica,Arial,sans-serif,Apple Color Emoji,Segoe UI Emoji"

// PanelOptions positions and styles one trophy panel.
type PanelOptions struct {
	X            int
	Y            int
	PanelSize    int
	NoBackground bool
	NoFrame      bool
}

// DefaultPanelOptions returns a panel at the origin with default size.
func DefaultPanelOptions() PanelOptions {
	return PanelOptions{
		PanelSize:    DefaultPanelSize,
		NoBackground: DefaultNoBackground,
		NoFrame:      DefaultNoFrame,
	}
}

// Frame is the panel's outer rectangle.
type Frame struct {
	Size          int
	Fill          string
	FillOpacity   int
	StrokeOpacity int
}

// Panel is the fully parameterized markup for one trophy.
type Panel struct {
	X, Y        int
	Frame       Frame
	Icon        string
	Title       string
	TitleColor  string
	TopLine     string
	BottomLine  string
	TextColor   string
	ProgressBar ProgressBar
}

// Compose selects the sub-elements and their values for t.
func Compose(t trophy.Trophy, theme Theme, opts PanelOptions) Panel {
	size := opts.PanelSize
	if size <= 0 {
		size = DefaultPanelSize
	}
	return Panel{
		X: opts.X,
		Y: opts.Y,
		Frame: Frame{
			Size:          size,
			Fill:          theme.Background,
			FillOpacity:   opacity(!opts.NoBackground),
			StrokeOpacity: opacity(!opts.NoFrame),
		},
		Icon:        Icon(theme, t.Tier()),
		Title:       t.Title(),
		TitleColor:  theme.Title,
		TopLine:     t.TopMessage(),
		BottomLine:  t.BottomMessage(),
		TextColor:   theme.Text,
		ProgressBar: NewProgressBar(t.Title(), t.Progress(), theme.NextRankBar),
	}
}

func opacity(visible bool) int {
	if visible {
		return 1
	}
	return 0
}

// SVG emits the panel as a nested svg element.
func (p Panel) SVG() string {
	var b strings.Builder
	s := p.Frame.Size
	fmt.Fprintf(&b, `<svg x="%d" y="%d" width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`,
		p.X, p.Y, s, s, s, s)
	fmt.Fprintf(&b, `<rect x="0.5" y="0.5" rx="4.5" width="%d" height="%d" stroke="#e1e4e8" fill="%s" stroke-opacity="%d" fill-opacity="%d"/>`,
		s-1, s-1, p.Frame.Fill, p.Frame.StrokeOpacity, p.Frame.FillOpacity)
	b.WriteString(p.Icon)
	writeText(&b, 18, 13, p.TitleColor, p.Title)
	writeText(&b, 85, 10.5, p.TextColor, p.TopLine)
	writeText(&b, 97, 10, p.TextColor, p.BottomLine)
	b.WriteString(p.ProgressBar.SVG())
	b.WriteString(`</svg>`)
	return b.String()
}

func writeText(b *strings.Builder, y int, fontSize float64, color, text string) {
	fmt.Fprintf(b, `<text x="50%%" y="%d" text-anchor="middle" font-family="%s" font-weight="bold" font-size="%g" fill="%s">%s</text>`,
		y, fontFamily, fontSize, color, html.EscapeString(text))
}

// RenderTrophy composes and emits a single panel.
func RenderTrophy(t trophy.Trophy, theme Theme, opts PanelOptions) string {
	return Compose(t, theme, opts).SVG()
}
