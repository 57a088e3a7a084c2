package helpers

import (
	"fmt"
	"testing"
)

func TestFormatTime12h(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"01:05", "01:05 AM"},
		{"09:30", "09:30 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:45", "12:45 PM"},
		{"13:05", "01:05 PM"},
		{"23:59", "11:59 PM"},
		// Malformed input degrades gracefully, never panics.
		{"25:99", "25:99"},
		{"24:00", "24:00"},
		{"12:60", "12:60"},
		{"abc", "abc"},
		{"7", "7"},
		{"a:b", "a:b"},
	}

	for _, tc := range cases {
		if got := FormatTime12h(tc.in); got != tc.want {
			t.Errorf("FormatTime12h(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTime24h(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"12:00 AM", "00:00"},
		{"12:00 PM", "12:00"},
		{"12:30 pm", "12:30"},
		{"01:05 PM", "13:05"},
		{"9:30 AM", "09:30"},
		{"11:59 pm", "23:59"},
		{"10:15AM", "10:15"},
		// Non-matching input is returned unchanged.
		{"13:00 PM", "13:00 PM"},
		{"garbage", "garbage"},
		{"12:00", "12:00"},
	}

	for _, tc := range cases {
		if got := FormatTime24h(tc.in); got != tc.want {
			t.Errorf("FormatTime24h(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeFormattingRoundTrip(t *testing.T) {
	t.Parallel()

	// Every on-the-hour and half-hour time survives the 24 -> 12 -> 24 trip.
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			t24 := fmt.Sprintf("%02d:%02d", hour, minute)
			t12 := FormatTime12h(t24)

			if back := FormatTime24h(t12); back != t24 {
				t.Errorf("round trip %q -> %q -> %q, want %q", t24, t12, back, t24)
			}
			if again := FormatTime12h(FormatTime24h(t12)); again != t12 {
				t.Errorf("12h fixpoint: got %q, want %q", again, t12)
			}
		}
	}
}
