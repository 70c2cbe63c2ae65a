package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAssetPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "art club.jpg")

	tests := []struct {
		dir      string
		name     string
		expected string
	}{
		{".", "art club.jpg", "art club.jpg"},
		{"assets", "art club.jpg", filepath.Join("assets", "art club.jpg")},
		{"", "movie club.jpg", "movie club.jpg"},
		{"assets", abs, abs},
		{"assets", "", ""},
		{"assets", "   ", ""},
	}

	for _, test := range tests {
		result := ResolveAssetPath(test.dir, test.name)
		if result != test.expected {
			t.Errorf("ResolveAssetPath(%q, %q) = %q, expected %q", test.dir, test.name, result, test.expected)
		}
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	if !DirectoryExists(dir) {
		t.Errorf("Expected %s to exist", dir)
	}

	file := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if DirectoryExists(file) {
		t.Error("Expected a regular file not to count as directory")
	}

	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Error("Expected missing directory to report false")
	}

	if DirectoryExists("") {
		t.Error("Expected empty path to report false")
	}
}

func TestDefaultAssetDirectory(t *testing.T) {
	dir := DefaultAssetDirectory()
	if dir != CurrentDirectory && dir != AssetsSubdir {
		t.Errorf("Unexpected default asset directory %q", dir)
	}
}
