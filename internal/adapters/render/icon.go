package render

import (
	"fmt"

	"github.com/okian/trophy/internal/domain/rank"
)

type medal struct {
	base, shadow, text string
}

func medalFor(theme Theme, tier rank.Tier) medal {
	switch tier {
	case rank.Secret:
		return medal{theme.SecretRank1, theme.SecretRank3, theme.SecretRankText}
	case rank.SSS, rank.SS, rank.S:
		return medal{theme.SRankBase, theme.SRankShadow, theme.SRankText}
	case rank.AAA, rank.AA, rank.A:
		return medal{theme.ARankBase, theme.ARankShadow, theme.ARankText}
	case rank.B:
		return medal{theme.BRankBase, theme.BRankShadow, theme.BRankText}
	default:
		return medal{theme.DefaultBase, theme.DefaultShadow, theme.DefaultText}
	}
}

// Icon returns the cup glyph for tier. SSS and SS get laurels; SECRET gets
// a three-color gradient.
func Icon(theme Theme, tier rank.Tier) string {
	m := medalFor(theme, tier)
	fill := m.base
	defs := ""
	if tier == rank.Secret {
		defs = fmt.Sprintf(`<defs><linearGradient id="secret-rank" x1="0" y1="0" x2="1" y2="1">`+
			`<stop offset="0%%" stop-color="%s"/><stop offset="50%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`+
			`</linearGradient></defs>`, theme.SecretRank1, theme.SecretRank2, theme.SecretRank3)
		fill = "url(#secret-rank)"
	}

	laurel := ""
	if tier == rank.SSS || tier == rank.SS {
		laurel = fmt.Sprintf(`<path d="M22 60 Q14 44 22 28 M88 60 Q96 44 88 28" stroke="%s" stroke-width="3" fill="none"/>`, theme.Laurel)
	}

	label := tier.String()
	if tier == rank.Unknown {
		label = "?"
	}

	return fmt.Sprintf(`<g class="trophy-icon">%s%s`+
		`<circle cx="55" cy="46" r="22" fill="%s"/>`+
		`<path d="M41 30 h28 v10 a14 14 0 0 1 -28 0 z" fill="%s" stroke="%s" stroke-width="1"/>`+
		`<rect x="50" y="54" width="10" height="6" fill="%s"/>`+
		`<rect x="44" y="60" width="22" height="4" rx="1" fill="%s"/>`+
		`<text x="55" y="44" text-anchor="middle" font-family="Courier, Monospace" font-weight="bold" font-size="%d" fill="%s">%s</text>`+
		`</g>`,
		defs, laurel, theme.IconCircle, fill, m.shadow, m.shadow, fill, iconFontSize(label), m.text, label)
}

func iconFontSize(label string) int {
	switch len(label) {
	case 1:
		return 12
	case 2:
		return 10
	case 3:
		return 8
	default:
		return 5
	}
}
