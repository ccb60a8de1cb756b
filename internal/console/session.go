// Package console runs the interactive grade-entry loop.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"GradeBook/internal/book"
)

// ErrMalformedInput is returned by ParseGrade for text that is not a decimal number.
var ErrMalformedInput = errors.New("input is not a valid number")

// MaxLineLength bounds a single input line. Longer lines are rejected as malformed.
const MaxLineLength = 4096

// ParseGrade parses one line of console input as a decimal grade.
// Hexadecimal floats and digit separators are not accepted.
func ParseGrade(line string) (float64, error) {
	s := strings.TrimSpace(line)
	digits := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(digits, "0x") || strings.ContainsRune(s, '_') {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, s)
	}
	return v, nil
}

// IsQuit reports whether line is the quit command.
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "q")
}

// Session reads grades from In until the quit command or end of input.
type Session struct {
	Book      *book.GradeBook
	In        io.Reader
	Out       io.Writer
	Prompt    string
	Separator string
}

// Run processes input lines. Rejected lines are reported on Out and the loop continues;
// only read and write failures end it with an error.
func (s *Session) Run() error {
	r := bufio.NewReaderSize(s.In, MaxLineLength)
	for {
		if s.Prompt != "" {
			if _, err := fmt.Fprintln(s.Out, s.Prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}
		line, tooLong, err := readLine(r)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		eof := err != nil
		if eof && line == "" && !tooLong {
			return nil
		}
		if IsQuit(line) {
			return nil
		}

		var herr error
		if tooLong {
			herr = fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedInput, MaxLineLength)
		} else {
			herr = s.handle(line)
		}
		if herr != nil {
			if _, werr := fmt.Fprintln(s.Out, herr.Error()); werr != nil {
				return fmt.Errorf("write error message: %w", werr)
			}
		}
		if _, err := fmt.Fprintln(s.Out, s.Separator); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}
		if eof {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line that does not fit
// the reader's buffer is consumed and discarded, and tooLong is set.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	for {
		chunk, rerr := r.ReadSlice('\n')
		switch {
		case errors.Is(rerr, bufio.ErrBufferFull):
			tooLong = true
		case tooLong:
			return "", true, rerr
		default:
			return strings.TrimRight(string(chunk), "\r\n"), false, rerr
		}
	}
}

func (s *Session) handle(line string) error {
	v, err := ParseGrade(line)
	if err != nil {
		return err
	}
	return s.Book.AddGrade(v)
}
