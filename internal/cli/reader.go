package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/Veraticus/smart-loan-advisor/internal/common"
)

// LineReader reads lines from the terminal and lets a pending read be
// abandoned when the context is canceled, so Ctrl-C never leaves the
// prompter blocked on stdin.
type LineReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
}

// NewLineReader wraps r for context-aware line reads.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("reader cannot be nil")
	}

	return &LineReader{
		reader: bufio.NewReader(r),
	}
}

// ReadLine returns the next line with surrounding whitespace removed.
// A final line without a trailing newline is still returned; a read at
// end of input returns common.ErrInputTerminated.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		line, err := r.reader.ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The read goroutine finishes on its own once input arrives.
		return "", common.ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return strings.TrimSpace(res.line), nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", common.ErrInputTerminated
			}
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}
