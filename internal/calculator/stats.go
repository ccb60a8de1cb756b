package calculator

import (
	"errors"
	"math"

	"GradeBook/internal/model"
)

// ErrNoGrades is returned when statistics are requested for an empty grade list.
var ErrNoGrades = errors.New("no grades to compute statistics from")

// Compute derives high, low, average and letter grade in a single pass over grades.
func Compute(grades []float64) (model.Statistics, error) {
	if len(grades) == 0 {
		return model.Statistics{}, ErrNoGrades
	}

	st := model.Statistics{
		High:  -math.MaxFloat64,
		Low:   math.MaxFloat64,
		Count: len(grades),
	}
	sum := 0.0
	for _, g := range grades {
		st.High = math.Max(st.High, g)
		st.Low = math.Min(st.Low, g)
		sum += g
	}
	st.Average = sum / float64(len(grades))
	st.Letter = LetterFor(st.Average)
	return st, nil
}
