package notifier

import (
	"fmt"
	"io"

	"GradeBook/internal/book"
	"GradeBook/internal/model"
)

// GradeAddedMessage is printed for every grade added while a ConsoleNotifier is subscribed.
const GradeAddedMessage = "A grade was added!"

// ConsoleNotifier announces added grades on a writer.
type ConsoleNotifier struct {
	Out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{Out: out}
}

// OnGradeAdded satisfies book.Handler.
func (c *ConsoleNotifier) OnGradeAdded(_ *book.GradeBook, _ model.GradeAddedEvent) error {
	if _, err := fmt.Fprintln(c.Out, GradeAddedMessage); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
