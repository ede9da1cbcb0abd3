package game

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD layout in screen pixels.
const (
	hudMargin     = 20
	hudLineHeight = 24
	hudLineGap    = 10
	iconMargin    = 10
)

var scorePrinter = message.NewPrinter(language.English)

// FormatScore rounds n to the nearest ten, halves to even, and groups the
// thousands: 1234567 -> "1,234,570".
func FormatScore(n int) string {
	rounded := int(math.RoundToEven(float64(n)/10) * 10)
	return scorePrinter.Sprintf("%d", rounded)
}

// Scoreboard lays out the score, high score and level labels.
type Scoreboard struct {
	ScreenWidth int
}

// Labels returns the HUD text for the given stats.
func (b Scoreboard) Labels(st Stats) []Label {
	scoreY := float64(hudMargin + hudLineHeight/2)
	right := float64(b.ScreenWidth - hudMargin)
	return []Label{
		{Text: FormatScore(st.Score), X: right, Y: scoreY, Align: AlignRight, Tone: ToneText},
		{
			Text:  "High score " + FormatScore(st.HighScore),
			X:     float64(b.ScreenWidth) / 2,
			Y:     scoreY,
			Align: AlignRight,
			Tone:  ToneText,
		},
		{
			Text:  fmt.Sprintf("Lvl %d", st.Level),
			X:     right,
			Y:     scoreY + hudLineHeight + hudLineGap,
			Align: AlignRight,
			Tone:  ToneText,
		},
	}
}
