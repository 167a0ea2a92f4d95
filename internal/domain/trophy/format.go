package trophy

import (
	"math"

	"github.com/dustin/go-humanize"
)

// AbridgeScore shortens a score for the bottom label: below 1 is "0pt",
// above 999 is shown in thousands with one decimal ("1.2kpt"), anything
// else as-is ("45pt").
func AbridgeScore(score float64) string {
	abs := math.Abs(score)
	switch {
	case abs < 1:
		return "0pt"
	case abs > 999:
		return humanize.FtoaWithDigits(score/1000, 1) + "kpt"
	default:
		return humanize.Ftoa(score) + "pt"
	}
}
