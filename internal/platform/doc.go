package platform

// Package platform contains OS integration: locating the asset directory and
// resolving record image names against it.
