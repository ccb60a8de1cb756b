package book

import (
	"errors"
	"math"
	"testing"

	"GradeBook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyBook(t *testing.T) {
	b := New("Dan's GradeBook")

	assert.Equal(t, "Dan's GradeBook", b.Name())
	assert.Equal(t, 0, b.Count())
	assert.Empty(t, b.Grades())
}

func TestNew_ReturnsDistinctBooks(t *testing.T) {
	b1 := New("Book 1")
	b2 := New("Book 2")

	assert.NotSame(t, b1, b2)
	require.NoError(t, b1.AddGrade(50))
	assert.Equal(t, 0, b2.Count())
}

func TestAddGrade_Bounds(t *testing.T) {
	b := New("bounds")

	require.NoError(t, b.AddGrade(0))
	require.NoError(t, b.AddGrade(100))
	assert.Equal(t, []float64{0, 100}, b.Grades())

	for _, v := range []float64{-0.01, 100.01, -50, 1000, math.NaN(), math.Inf(1)} {
		err := b.AddGrade(v)
		assert.ErrorIs(t, err, ErrInvalidGrade, "value %v", v)

		var ige *InvalidGradeError
		if assert.True(t, errors.As(err, &ige)) && !math.IsNaN(v) {
			assert.Equal(t, v, ige.Value)
		}
	}
	assert.Equal(t, 2, b.Count())
}

func TestAddGrade_PreservesInsertionOrder(t *testing.T) {
	b := New("order")
	for _, v := range []float64{70, 10, 70, 99.5} {
		require.NoError(t, b.AddGrade(v))
	}
	assert.Equal(t, []float64{70, 10, 70, 99.5}, b.Grades())
}

func TestGrades_ReturnsCopy(t *testing.T) {
	b := New("copy")
	require.NoError(t, b.AddGrade(50))

	g := b.Grades()
	g[0] = 1

	assert.Equal(t, []float64{50}, b.Grades())
}

func TestAddLetterGrade(t *testing.T) {
	tests := []struct {
		letter rune
		want   float64
	}{
		{'A', 90},
		{'B', 80},
		{'C', 70},
		{'D', 0},
		{'z', 0},
	}
	for _, tt := range tests {
		b := New("letters")
		require.NoError(t, b.AddLetterGrade(tt.letter))
		assert.Equal(t, []float64{tt.want}, b.Grades(), "letter %q", tt.letter)
	}
}

func TestStatistics_MixedGrades(t *testing.T) {
	b := New("stats")
	for _, v := range []float64{89.1, 90.5, 77.5} {
		require.NoError(t, b.AddGrade(v))
	}

	st, err := b.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 77.5, st.Low)
	assert.Equal(t, 90.5, st.High)
	assert.InDelta(t, 85.7, st.Average, 0.05)
	assert.Equal(t, 'B', st.Letter)
}

func TestStatistics_Letters(t *testing.T) {
	tests := []struct {
		grades []float64
		letter rune
	}{
		{[]float64{95, 95, 95}, 'A'},
		{[]float64{65}, 'D'},
		{[]float64{10}, 'F'},
		{[]float64{72, 74}, 'C'},
	}
	for _, tt := range tests {
		b := New("letters")
		for _, v := range tt.grades {
			require.NoError(t, b.AddGrade(v))
		}
		st, err := b.Statistics()
		require.NoError(t, err)
		assert.Equal(t, tt.letter, st.Letter, "grades %v", tt.grades)
	}
}

func TestStatistics_EmptyBook(t *testing.T) {
	_, err := New("empty").Statistics()
	assert.ErrorIs(t, err, ErrEmptyBook)
}

func TestStatistics_IsSnapshot(t *testing.T) {
	b := New("snapshot")
	require.NoError(t, b.AddGrade(50))

	first, err := b.Statistics()
	require.NoError(t, err)
	second, err := b.Statistics()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, b.AddGrade(100))
	assert.Equal(t, 50.0, first.High)

	third, err := b.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 100.0, third.High)
}

func TestSubscribe_NotifiesInOrder(t *testing.T) {
	b := New("observed")
	var calls []string

	b.Subscribe(func(src *GradeBook, evt model.GradeAddedEvent) error {
		assert.Same(t, b, src)
		calls = append(calls, "first")
		return nil
	})
	b.Subscribe(func(_ *GradeBook, _ model.GradeAddedEvent) error {
		calls = append(calls, "second")
		return nil
	})

	require.NoError(t, b.AddGrade(88))
	assert.Equal(t, []string{"first", "second"}, calls)

	require.Error(t, b.AddGrade(101))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestSubscribe_EventMetadata(t *testing.T) {
	b := New("meta")
	var events []model.GradeAddedEvent
	b.Subscribe(func(_ *GradeBook, evt model.GradeAddedEvent) error {
		events = append(events, evt)
		return nil
	})

	require.NoError(t, b.AddGrade(61))
	require.NoError(t, b.AddLetterGrade('A'))

	require.Len(t, events, 2)
	assert.Equal(t, "meta", events[0].Book)
	assert.Equal(t, 61.0, events[0].Grade)
	assert.Equal(t, 1, events[0].Count)
	assert.Equal(t, 90.0, events[1].Grade)
	assert.Equal(t, 2, events[1].Count)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.False(t, events[0].At.IsZero())
}

func TestSubscribe_SameHandlerTwice(t *testing.T) {
	b := New("multicast")
	count := 0
	h := func(_ *GradeBook, _ model.GradeAddedEvent) error {
		count++
		return nil
	}

	b.Subscribe(h)
	b.Subscribe(h)
	require.NoError(t, b.AddGrade(75))

	assert.Equal(t, 2, count)
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	b := New("unsub")
	var first, second int
	s1 := b.Subscribe(func(_ *GradeBook, _ model.GradeAddedEvent) error {
		first++
		return nil
	})
	b.Subscribe(func(_ *GradeBook, _ model.GradeAddedEvent) error {
		second++
		return nil
	})

	require.NoError(t, b.AddGrade(10))
	b.Unsubscribe(s1)
	b.Unsubscribe(s1)
	require.NoError(t, b.AddGrade(20))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestUnsubscribe_DuringDispatch(t *testing.T) {
	b := New("self-removing")
	var calls []string
	var s1 Subscription
	s1 = b.Subscribe(func(src *GradeBook, _ model.GradeAddedEvent) error {
		calls = append(calls, "once")
		src.Unsubscribe(s1)
		return nil
	})
	b.Subscribe(func(_ *GradeBook, _ model.GradeAddedEvent) error {
		calls = append(calls, "always")
		return nil
	})

	require.NoError(t, b.AddGrade(1))
	require.NoError(t, b.AddGrade(2))

	assert.Equal(t, []string{"once", "always", "always"}, calls)
}

func TestAddGrade_HandlerErrorPropagates(t *testing.T) {
	b := New("failing")
	boom := errors.New("boom")
	reached := false

	b.Subscribe(func(_ *GradeBook, _ model.GradeAddedEvent) error { return boom })
	b.Subscribe(func(_ *GradeBook, _ model.GradeAddedEvent) error {
		reached = true
		return nil
	})

	err := b.AddGrade(55)
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached)
	assert.Equal(t, []float64{55}, b.Grades())
}
