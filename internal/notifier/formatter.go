package notifier

import (
	"fmt"
	"strings"

	"GradeBook/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// FormatReport formats the end-of-session statistics for a book.
func FormatReport(category, name string, st model.Statistics) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(category) + "\n")
	b.WriteString(fmt.Sprintf("For the book named %s\n", name))
	b.WriteString(fmt.Sprintf("The lowest grade is %.1f\n", st.Low))
	b.WriteString(fmt.Sprintf("The highest grade is %.1f\n", st.High))
	b.WriteString(fmt.Sprintf("The average grade is %.1f\n", st.Average))
	b.WriteString(fmt.Sprintf("The letter grade is %c\n", st.Letter))

	return b.String()
}

// FormatEmptyReport is printed instead of FormatReport when no grade was recorded.
func FormatEmptyReport(category, name string) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(category) + "\n")
	b.WriteString(fmt.Sprintf("For the book named %s\n", name))
	b.WriteString("No grades were recorded.\n")
	return b.String()
}
