package database

import (
	"path/filepath"
	"testing"
)

func TestSourceURL(t *testing.T) {
	abs, err := filepath.Abs("migrations")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"default", "", "file://" + abs},
		{"relative", "file://migrations", "file://" + abs},
		{"absolute", "file:///srv/migrations", "file:///srv/migrations"},
		{"other scheme", "github://owner/repo/migrations", "github://owner/repo/migrations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sourceURL(tt.in)
			if err != nil {
				t.Fatalf("sourceURL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("sourceURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
