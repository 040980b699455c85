package stringsx

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", " ", "x", "y"); got != "x" {
		t.Fatalf("FirstNonEmpty: want 'x', got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("FirstNonEmpty empty: want '', got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Dune", 10, "Dune"},
		{"Dune", 0, "Dune"},
		{"The Left Hand of Darkness", 12, "The Left ..."},
		{"Gödel", 2, "Gö"},
		{"Gödel, Escher, Bach", 6, "Göd..."},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.max); got != c.want {
			t.Fatalf("Truncate(%q, %d): want %q, got %q", c.in, c.max, c.want, got)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "book"); got != "1 book" {
		t.Fatalf("Count 1: got %q", got)
	}
	if got := Count(0, "book"); got != "0 books" {
		t.Fatalf("Count 0: got %q", got)
	}
}
