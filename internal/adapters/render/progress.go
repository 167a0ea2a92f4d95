package render

import (
	"fmt"
	"strings"
)

// barMaxWidth is the full progress bar width in panel units.
const barMaxWidth = 80

// ProgressBar describes the next-rank bar.
type ProgressBar struct {
	ID       string
	Fraction float64
	Color    string
	Width    float64
}

// NewProgressBar sizes a bar for fraction, clamped to [0, 1].
func NewProgressBar(title string, fraction float64, color string) ProgressBar {
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	return ProgressBar{
		ID:       barID(title),
		Fraction: fraction,
		Color:    color,
		Width:    barMaxWidth * fraction,
	}
}

// barID keeps only characters valid in an SVG id and CSS selector.
func barID(title string) string {
	var b strings.Builder
	for _, r := range title {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		b.WriteString("trophy")
	}
	return b.String()
}

// SVG emits the animated background track and fill.
func (p ProgressBar) SVG() string {
	return fmt.Sprintf(`<style>@keyframes %[1]sRankAnimation { from { width: 0px; } to { width: %[2]gpx; } }`+
		` #%[1]s-rank-progress { animation: %[1]sRankAnimation 1s forwards ease-in-out; }</style>`+
		`<rect x="15" y="101" rx="1" width="%[3]d" height="3.2" opacity="0.3" fill="%[4]s"/>`+
		`<rect id="%[1]s-rank-progress" x="15" y="101" rx="1" height="3.2" fill="%[4]s"/>`,
		p.ID, p.Width, barMaxWidth, p.Color)
}
