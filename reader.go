// FILE: lixenwraith/configfile/reader.go
package configfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLineLength bounds the content of a single line, terminator excluded
const DefaultMaxLineLength = 64 * 1024

// initialLineBuffer is the starting read buffer; it grows as long lines arrive
const initialLineBuffer = 8

// lineReader yields successive lines from a source, stripping the terminator.
type lineReader struct {
	r    *bufio.Reader
	max  int
	line int
}

func newLineReader(r io.Reader, max int) *lineReader {
	if max <= 0 {
		max = DefaultMaxLineLength
	}
	return &lineReader{r: bufio.NewReaderSize(r, 16), max: max}
}

// Next returns the next line without its trailing newline. It returns io.EOF
// once the source is exhausted. A final line without a terminator is returned
// as a valid line. Any other error wraps ErrLineRead and is fatal for the pass.
func (lr *lineReader) Next() (string, error) {
	buf := make([]byte, 0, initialLineBuffer)
	for {
		frag, err := lr.r.ReadSlice('\n')
		buf = append(buf, frag...)

		// the terminator does not count against the limit
		n := len(buf)
		if err == nil {
			n--
		}
		if n > lr.max {
			return "", fmt.Errorf("%w: line %d: %w", ErrLineRead, lr.line+1, ErrLineTooLong)
		}

		switch {
		case err == nil:
			lr.line++
			return lr.finish(buf[:len(buf)-1])
		case errors.Is(err, bufio.ErrBufferFull):
			// partial line, keep reading into the grown buffer
			continue
		case errors.Is(err, io.EOF):
			if len(buf) == 0 {
				return "", io.EOF
			}
			lr.line++
			return lr.finish(buf)
		default:
			return "", fmt.Errorf("%w: line %d: %w", ErrLineRead, lr.line+1, err)
		}
	}
}

// finish rejects lines whose content reads as empty at the byte level (a
// leading NUL), which only a degenerate or binary source produces.
func (lr *lineReader) finish(b []byte) (string, error) {
	if len(b) > 0 && b[0] == 0 {
		return "", fmt.Errorf("%w: line %d: zero-length read", ErrLineRead, lr.line)
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return string(b), nil
}

// Line returns the number of the last line returned by Next.
func (lr *lineReader) Line() int {
	return lr.line
}
