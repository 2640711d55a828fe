package uploads

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "roof.jpg", "roof.jpg"},
		{"spaces become underscores", "front porch.jpg", "front_porch.jpg"},
		{"path separators become hyphens", "photos/roof.jpg", "photos-roof.jpg"},
		{"windows separators", `photos\roof.jpg`, "photos-roof.jpg"},
		{"traversal attempt", "../../etc/passwd", "..-..-etc-passwd"},
		{"unicode", "crête.jpg", "cr_te.jpg"},
		{"empty falls back", "", "upload.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if strings.ContainsAny(got, `/\`) {
				t.Errorf("sanitized name %q still contains a path separator", got)
			}
		})
	}
}
