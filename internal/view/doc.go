package view

// Package view holds the toolkit-independent behaviour behind the three tabs:
// building rows from records, opening details, and filtering clubs by
// category. A Surface implementation does the actual drawing.
