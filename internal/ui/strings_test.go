package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-long-image-file-name.png", 10, "a-long-..."},
		{"abc", 2, "ab"},
		{"  padded  ", 10, "padded"},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short.png", 20, "short.png"},
		{"https://randomfox.ca/images/121.jpg", 21, "https://r...s/121.jpg"},
		{"", 10, ""},
		{"abcdef", 4, "a..."},
	}
	for _, tc := range cases {
		if got := truncateMiddle(tc.in, tc.limit); got != tc.want {
			t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle_RespectsLimit(t *testing.T) {
	in := "https://randomfox.ca/images/a-very-long-file-name-indeed.jpg"
	for limit := 6; limit < 40; limit++ {
		if got := truncateMiddle(in, limit); len([]rune(got)) > limit {
			t.Fatalf("truncateMiddle(_, %d) produced %d runes: %q", limit, len([]rune(got)), got)
		}
	}
}
