package ports

// StrokeTable maps a character to its stroke count.
type StrokeTable interface {
	Strokes(r rune) (int, bool)
}
