package render

import (
	"fmt"
	"strings"

	"github.com/okian/trophy/internal/domain/trophy"
)

// Card layout defaults.
const (
	DefaultMaxColumn    = 8
	DefaultMaxRow       = 3
	DefaultMarginWidth  = 0
	DefaultMarginHeight = 0
)

// CardOptions lays out a grid of panels.
type CardOptions struct {
	Theme Theme
	// MaxColumn bounds panels per row; -1 puts every trophy on one row.
	MaxColumn    int
	MaxRow       int
	MarginWidth  int
	MarginHeight int
	PanelSize    int
	NoBackground bool
	NoFrame      bool
}

// DefaultCardOptions returns the default layout with the default theme.
func DefaultCardOptions() CardOptions {
	theme, _ := LookupTheme(DefaultThemeName)
	return CardOptions{
		Theme:        theme,
		MaxColumn:    DefaultMaxColumn,
		MaxRow:       DefaultMaxRow,
		MarginWidth:  DefaultMarginWidth,
		MarginHeight: DefaultMarginHeight,
		PanelSize:    DefaultPanelSize,
		NoBackground: DefaultNoBackground,
		NoFrame:      DefaultNoFrame,
	}
}

// Layout is the computed grid for a card.
type Layout struct {
	Columns int
	Rows    int
	Width   int
	Height  int
	Panels  []Panel
}

// Plan places trophies left to right, top to bottom. Trophies that do not
// fit in Columns*Rows are left out.
func Plan(trophies []trophy.Trophy, opts CardOptions) Layout {
	size := opts.PanelSize
	if size <= 0 {
		size = DefaultPanelSize
	}
	columns := opts.MaxColumn
	if columns == -1 || columns > len(trophies) {
		columns = len(trophies)
	}
	if columns <= 0 {
		return Layout{}
	}

	rows := (len(trophies)-1)/columns + 1
	if opts.MaxRow > 0 && rows > opts.MaxRow {
		rows = opts.MaxRow
	}
	if n := columns * rows; len(trophies) > n {
		trophies = trophies[:n]
	}

	layout := Layout{
		Columns: columns,
		Rows:    rows,
		Width:   size*columns + opts.MarginWidth*(columns-1),
		Height:  size*rows + opts.MarginHeight*(rows-1),
		Panels:  make([]Panel, 0, len(trophies)),
	}
	for i, t := range trophies {
		col, row := i%columns, i/columns
		layout.Panels = append(layout.Panels, Compose(t, opts.Theme, PanelOptions{
			X:            (size + opts.MarginWidth) * col,
			Y:            (size + opts.MarginHeight) * row,
			PanelSize:    size,
			NoBackground: opts.NoBackground,
			NoFrame:      opts.NoFrame,
		}))
	}
	return layout
}

// SVG wraps every panel in one root svg element.
func (l Layout) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`,
		l.Width, l.Height, l.Width, l.Height)
	for _, p := range l.Panels {
		b.WriteString(p.SVG())
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// RenderCard plans and emits a card for c in its current order.
func RenderCard(c trophy.Collection, opts CardOptions) string {
	return Plan(c.Trophies(), opts).SVG()
}
