package ui

import "testing"

func TestFitCell(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"pads", "ID", 5, " ID  "},
		{"exact", "Item", 5, " Item"},
		{"truncates", "Item 100", 5, " Ite…"},
		{"single cell", "ID", 1, "…"},
		{"zero width", "ID", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fitCell(tc.text, tc.width)
			if got != tc.want {
				t.Fatalf("fitCell(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
			if w := cellWidth.StringWidth(got); w != tc.width {
				t.Fatalf("width = %d, want %d", w, tc.width)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  ", 10); got != "" {
		t.Fatalf("truncate blank = %q, want empty", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short = %q, want short", got)
	}
	got := truncate("a much longer value", 8)
	if cellWidth.StringWidth(got) > 8 {
		t.Fatalf("truncate = %q (width %d), want <= 8", got, cellWidth.StringWidth(got))
	}
	if got == "a much longer value" {
		t.Fatal("expected truncation")
	}
}
