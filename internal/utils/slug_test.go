package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  The Spice Route! ", "the-spice-route"},
		{"Café Lünä", "caf-l-n"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   Spaces -- and hyphens", "multiple-spaces-and-hyphens"},
		{"***", ""},
		{"", ""},
		{"42 Burgers & Fries", "42-burgers-fries"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
