package assets

// Package assets loads record thumbnails from disk. Loading never fails: a
// missing or broken image degrades to a flat placeholder of the requested size.
