// Package textfmt shapes now-playing output for status bars: fixed-width
// padding, ellipsis truncation and timestamp-driven marquee scrolling, all
// measured in display columns rather than bytes or runes.
package textfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// PadToWidth pads or truncates text to a fixed display width. Width is
// measured in display columns, so emoji and CJK characters count by their
// visual width. If width <= 0 the text is returned unchanged; longer text
// is truncated with a "..." suffix, shorter text is padded with spaces.
func PadToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		truncated := runewidth.Truncate(text, width-ellipsisWidth, "")
		result := truncated + ellipsis

		// Truncation of wide characters can land short of the target.
		resultWidth := runewidth.StringWidth(result)
		if resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		} else if resultWidth > width {
			return runewidth.Truncate(result, width, "")
		}
		return result
	} else if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}

// Marquee creates a scrolling window over text that exceeds the target
// width; text that fits is returned statically padded. The scroll position
// derives from the current Unix timestamp and the speed (characters per
// second), so the function is stateless: consecutive invocations from a
// status bar advance the window without any persisted position.
func Marquee(text string, width int, speed int, separator string) string {
	if width <= 0 {
		return text
	}

	if runewidth.StringWidth(text) <= width {
		return PadToWidth(text, width)
	}

	// "original + separator + original" makes the loop seamless.
	extended := text + separator + text
	extendedRunes := []rune(extended)

	now := time.Now().Unix()
	totalChars := len(extendedRunes)
	position := int(now*int64(speed)) % totalChars

	var result []rune
	resultWidth := 0

	for i := 0; i < totalChars && resultWidth < width; i++ {
		r := extendedRunes[(position+i)%totalChars]
		rw := runewidth.RuneWidth(r)
		if resultWidth+rw > width {
			break
		}
		result = append(result, r)
		resultWidth += rw
	}

	if resultWidth < width {
		return string(result) + strings.Repeat(" ", width-resultWidth)
	}
	return string(result)
}

// FormatClock renders a duration in seconds as MM:SS, or H:MM:SS past the
// hour mark. Negative values clamp to zero.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
