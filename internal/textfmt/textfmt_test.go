package textfmt

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "no width returns unchanged",
			text:  "hello world",
			width: 0,
			want:  "hello world",
		},
		{
			name:  "negative width returns unchanged",
			text:  "hello",
			width: -5,
			want:  "hello",
		},
		{
			name:  "exact width unchanged",
			text:  "hello",
			width: 5,
			want:  "hello",
		},
		{
			name:  "short text padded",
			text:  "hi",
			width: 5,
			want:  "hi   ",
		},
		{
			name:  "long text truncated with ellipsis",
			text:  "hello world",
			width: 8,
			want:  "hello...",
		},
		{
			name:  "width smaller than ellipsis",
			text:  "hello world",
			width: 2,
			want:  "..",
		},
		{
			name:  "empty text padded",
			text:  "",
			width: 3,
			want:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadToWidth(tt.text, tt.width); got != tt.want {
				t.Errorf("PadToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadToWidthWideCharacters(t *testing.T) {
	// CJK characters occupy two display columns each.
	got := PadToWidth("日本語のタイトル", 10)
	if w := runewidth.StringWidth(got); w != 10 {
		t.Errorf("display width = %d, want 10 (%q)", w, got)
	}
}

func TestMarqueeStatic(t *testing.T) {
	// Text that fits is padded, never scrolled.
	got := Marquee("short", 10, 1, " | ")
	if got != "short     " {
		t.Errorf("Marquee() = %q, want %q", got, "short     ")
	}
}

func TestMarqueeNoWidth(t *testing.T) {
	if got := Marquee("anything", 0, 1, " | "); got != "anything" {
		t.Errorf("Marquee() = %q, want the text unchanged", got)
	}
}

func TestMarqueeScrollingWidth(t *testing.T) {
	// The scroll position is timestamp-driven, so assert the invariant
	// rather than the exact window: output always fills the target width.
	text := "a very long now playing line that needs scrolling"
	for _, width := range []int{5, 12, 30} {
		got := Marquee(text, width, 2, " | ")
		if w := runewidth.StringWidth(got); w != width {
			t.Errorf("display width = %d, want %d (%q)", w, width, got)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{-3, "00:00"},
		{59, "00:59"},
		{59.9, "00:59"},
		{60, "01:00"},
		{245, "04:05"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3723, "1:02:03"},
		{7325, "2:02:05"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
