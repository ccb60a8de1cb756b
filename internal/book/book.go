// Package book holds the GradeBook: a named, append-only list of grades
// with on-demand statistics and synchronous grade-added notifications.
package book

import (
	"errors"
	"fmt"
	"math"
	"time"

	"GradeBook/internal/calculator"
	"GradeBook/internal/model"

	"github.com/google/uuid"
)

const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

var (
	// ErrInvalidGrade matches every *InvalidGradeError.
	ErrInvalidGrade = errors.New("invalid grade")
	// ErrEmptyBook is returned by Statistics when no grade has been added yet.
	ErrEmptyBook = calculator.ErrNoGrades
)

// InvalidGradeError reports a grade outside [MinGrade, MaxGrade].
type InvalidGradeError struct {
	Value float64
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("invalid grade %g: must be between %g and %g", e.Value, MinGrade, MaxGrade)
}

func (e *InvalidGradeError) Is(target error) bool { return target == ErrInvalidGrade }

// Handler is called after a grade has been appended to src.
// A non-nil error stops dispatch and is returned from AddGrade.
type Handler func(src *GradeBook, evt model.GradeAddedEvent) error

// Subscription identifies one registration of a Handler.
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler Handler
}

// GradeBook is not safe for concurrent use.
type GradeBook struct {
	name        string
	grades      []float64
	subscribers []subscriber
	nextID      Subscription
}

// New creates an empty book with the given name.
func New(name string) *GradeBook {
	return &GradeBook{name: name}
}

func (b *GradeBook) Name() string { return b.name }

// Count returns the number of grades recorded so far.
func (b *GradeBook) Count() int { return len(b.grades) }

// Grades returns a copy of the recorded grades in insertion order.
func (b *GradeBook) Grades() []float64 {
	out := make([]float64, len(b.grades))
	copy(out, b.grades)
	return out
}

// AddGrade appends v and notifies subscribers in subscription order.
// Values outside [0, 100] (and NaN) are rejected without side effects.
func (b *GradeBook) AddGrade(v float64) error {
	if math.IsNaN(v) || v < MinGrade || v > MaxGrade {
		return &InvalidGradeError{Value: v}
	}
	b.grades = append(b.grades, v)

	if len(b.subscribers) == 0 {
		return nil
	}
	evt := model.GradeAddedEvent{
		ID:    uuid.NewString(),
		Book:  b.name,
		Grade: v,
		Count: len(b.grades),
		At:    time.Now(),
	}
	// Handlers may unsubscribe while being notified.
	subs := make([]subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	for _, s := range subs {
		if err := s.handler(b, evt); err != nil {
			return fmt.Errorf("grade-added handler: %w", err)
		}
	}
	return nil
}

// AddLetterGrade records the numeric value of letter: A=90, B=80, C=70, anything else 0.
func (b *GradeBook) AddLetterGrade(letter rune) error {
	return b.AddGrade(calculator.LetterValue(letter))
}

// Statistics computes a fresh snapshot of the current grades.
func (b *GradeBook) Statistics() (model.Statistics, error) {
	return calculator.Compute(b.grades)
}

// Subscribe registers h. Registering the same handler twice makes it run twice per grade.
func (b *GradeBook) Subscribe(h Handler) Subscription {
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{id: b.nextID, handler: h})
	return b.nextID
}

// Unsubscribe removes the registration s. Unknown or already removed subscriptions are ignored.
func (b *GradeBook) Unsubscribe(s Subscription) {
	for i, sub := range b.subscribers {
		if sub.id == s {
			b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
			return
		}
	}
}
