package store

// Package store holds the in-memory records rendered by the UI. A Store is
// built by the caller from a Seed (embedded YAML by default) and passed into
// the UI, so tests can substitute their own fixtures.
