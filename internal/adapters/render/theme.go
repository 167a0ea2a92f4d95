// Package render composes SVG trophy panels and cards.
package render

import (
	"slices"
	"strings"
)

// Theme is a color palette for panels and icons.
type Theme struct {
	Background     string
	Title          string
	Text           string
	IconCircle     string
	Laurel         string
	NextRankBar    string
	SecretRank1    string
	SecretRank2    string
	SecretRank3    string
	SecretRankText string
	SRankBase      string
	SRankShadow    string
	SRankText      string
	ARankBase      string
	ARankShadow    string
	ARankText      string
	BRankBase      string
	BRankShadow    string
	BRankText      string
	DefaultBase    string
	DefaultShadow  string
	DefaultText    string
}

// DefaultThemeName is used when a theme is missing or unknown.
const DefaultThemeName = "default"

var medals = Theme{
	SecretRank1: "red", SecretRank2: "fuchsia", SecretRank3: "blue", SecretRankText: "fuchsia",
	SRankBase: "#FAD200", SRankShadow: "#C8A090", SRankText: "#886000",
	ARankBase: "#B0B0B0", ARankShadow: "#9090C0", ARankText: "#505050",
	BRankBase: "#A18D66", BRankShadow: "#816D96", BRankText: "#412D06",
	DefaultBase: "#777", DefaultShadow: "#333", DefaultText: "#333",
}

func palette(bg, title, text, circle, laurel, bar string) Theme {
	t := medals
	t.Background, t.Title, t.Text = bg, title, text
	t.IconCircle, t.Laurel, t.NextRankBar = circle, laurel, bar
	return t
}

var themes = map[string]Theme{
	DefaultThemeName: palette("#FFF", "#000", "#666", "#FFF", "#009366", "#0366d6"),
	"flat":           palette("#FFF", "#000", "#666", "#FFF", "#009366", "#0366d6"),
	"onedark":        palette("#282c34", "#e5c17c", "#e06c75", "#fff", "#98c379", "#e5c17c"),
	"dracula":        palette("#282a36", "#ff79c6", "#f8f8f2", "#f1fa8c", "#50fa7b", "#bd93f9"),
	"nord":           palette("#2e3440", "#88c0d0", "#d8dee9", "#eceff4", "#a3be8c", "#81a1c1"),
	"gruvbox":        palette("#282828", "#fabd2f", "#ebdbb2", "#f9f5d7", "#b8bb26", "#fe8019"),
}

// LookupTheme returns the named theme. ok is false when the name is unknown
// and the default theme was returned instead.
func LookupTheme(name string) (theme Theme, ok bool) {
	theme, ok = themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return themes[DefaultThemeName], false
	}
	return theme, true
}

// ThemeNames lists the registered themes in name order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
