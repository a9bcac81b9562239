package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Ett Café, Deux Croissants!", "ett-cafe-deux-croissants"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-a-slug", "already-a-slug"},
		{"Über Äpfel & Öl", "uber-apfel-ol"},
		{"Multiple   spaces", "multiple-spaces"},
		{"100% Go, 0% Magic", "100-go-0-magic"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"a", "hello-world", "post-123", "2024-review"}
	for _, s := range valid {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "émigré"}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}
