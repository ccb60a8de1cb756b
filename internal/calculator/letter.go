package calculator

// Letters defines the average-to-letter mapping, highest threshold first.
var Letters = []struct {
	MinAverage float64
	Letter     rune
}{
	{90, 'A'},
	{80, 'B'},
	{70, 'C'},
	{60, 'D'},
}

// DefaultLetter is given to averages below every threshold.
const DefaultLetter = 'F'

// LetterFor maps an average to its letter grade.
func LetterFor(average float64) rune {
	for _, l := range Letters {
		if average >= l.MinAverage {
			return l.Letter
		}
	}
	return DefaultLetter
}

// LetterValue returns the numeric grade recorded for a letter.
// Letters other than A, B and C count as zero.
func LetterValue(letter rune) float64 {
	switch letter {
	case 'A':
		return 90
	case 'B':
		return 80
	case 'C':
		return 70
	default:
		return 0
	}
}
