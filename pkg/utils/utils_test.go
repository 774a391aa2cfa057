package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"/music/Song.FLAC", true},
		{"track.m4a", true},
		{"cover.jpg", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsAudioFile(tt.path); got != tt.want {
				t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckAudioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := CheckAudioFile(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckAudioFile(""); err == nil {
		t.Error("expected error for empty path")
	}
	if err := CheckAudioFile(dir); err == nil {
		t.Error("expected error for a directory")
	}
	if err := CheckAudioFile(filepath.Join(dir, "missing.mp3")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
