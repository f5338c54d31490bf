package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink delivers a rendered report.
type Sink interface {
	Deliver(ctx context.Context, text string) error
}

// WriterSink prints reports to an io.Writer (stdout by default).
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w, or stdout when w is nil.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stdout
	}
	return &WriterSink{w: w}
}

// Deliver writes text followed by a newline.
func (s *WriterSink) Deliver(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
