package model

import "time"

// Statistics is a snapshot of a book's grades at the moment it was computed.
type Statistics struct {
	High    float64
	Low     float64
	Average float64
	Letter  rune
	Count   int
}

// GradeAddedEvent is passed to subscribers after a grade has been appended.
type GradeAddedEvent struct {
	ID    string
	Book  string
	Grade float64
	Count int // grades in the book after the append
	At    time.Time
}
