package model

// Package model defines the records shown by the app: club notifications,
// shared resources, and clubs grouped by category. Structures are plain values
// meant for direct rendering; the only mutable state is a notification's read
// flag.
