package recorder

import (
	"time"

	"GradeBook/internal/book"
	"GradeBook/internal/model"
)

// SessionSummary holds the statistics printed at the end of a session.
type SessionSummary struct {
	Book     string
	Category string
	Stats    model.Statistics
	Empty    bool // no grades were recorded; Stats is zero
	EndedAt  time.Time
}

// Recorder keeps an audit trail of grade events. It never feeds grades back into a book.
type Recorder interface {
	RecordGrade(evt *model.GradeAddedEvent) error
	RecordSummary(sum *SessionSummary) error
	Close() error
}

// GradeHandler subscribes rec to a book's grade-added notifications.
func GradeHandler(rec Recorder) book.Handler {
	return func(_ *book.GradeBook, evt model.GradeAddedEvent) error {
		return rec.RecordGrade(&evt)
	}
}
