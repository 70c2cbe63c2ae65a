package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// Asset directory fallbacks, relative to the working directory
const (
	CurrentDirectory = "."
	AssetsSubdir     = "assets"
)

// ResolveAssetPath joins an image name onto the asset directory. Absolute
// names are returned unchanged; an empty name stays empty so it fails to load.
func ResolveAssetPath(dir, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// DirectoryExists reports whether path names an existing directory
func DirectoryExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// DefaultAssetDirectory returns where images are looked up when nothing is
// configured: ./assets if it exists, otherwise the working directory.
func DefaultAssetDirectory() string {
	if DirectoryExists(AssetsSubdir) {
		return AssetsSubdir
	}
	return CurrentDirectory
}
