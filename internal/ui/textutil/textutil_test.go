package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits unchanged", "nda.pdf", 10, "nda.pdf"},
		{"exact width unchanged", "nda.pdf", 7, "nda.pdf"},
		{"truncated with ellipsis", "master-services-agreement.pdf", 10, "master-se…"},
		{"zero width", "contract", 0, ""},
		{"width one is just ellipsis for long text", "contract", 1, "…"},
		{"wide runes counted by columns", "契約書データ", 5, "契約…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
			if w := VisualWidth(Truncate(tt.in, tt.maxWidth)); w > tt.maxWidth {
				t.Errorf("truncated width %d exceeds max %d", w, tt.maxWidth)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("a", 4); got != "a   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight overflow = %q", got)
	}
}
