package sink

import (
	"errors"
	"io"
)

// DefaultBufferSize is the flush window capacity used when NewWriter is
// given no explicit WithBufferSize option (spec.md §4.5 uses 1024).
const DefaultBufferSize = 1024

// Interrupted mirrors source.Interrupted: an io.Writer wrapped by a
// WriterSink may return an error satisfying this interface to signal a
// retryable interruption rather than a genuine write failure.
type Interrupted interface {
	Interrupted() bool
}

func isInterrupted(err error) bool {
	var i Interrupted
	if errors.As(err, &i) {
		return i.Interrupted()
	}
	return false
}

// Option configures a WriterSink at construction time.
type Option func(*WriterSink)

// WithBufferSize overrides the flush buffer's fixed capacity.
func WithBufferSize(n int) Option {
	return func(s *WriterSink) {
		if n > 0 {
			s.buf = make([]byte, 0, n)
		}
	}
}

// WriterSink buffers output over a blocking io.Writer, flushing whenever
// the fixed-capacity buffer would overflow.
type WriterSink struct {
	w   io.Writer
	buf []byte // len is the amount currently buffered; cap is the fixed capacity
}

var _ Sink = (*WriterSink)(nil)

// NewWriter wraps w. The returned WriterSink owns w exclusively until
// Finish is called.
func NewWriter(w io.Writer, opts ...Option) *WriterSink {
	s := &WriterSink{w: w, buf: make([]byte, 0, DefaultBufferSize)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// flush writes the buffered bytes to w, retrying on Interrupted errors,
// and resets the buffer to empty.
func (s *WriterSink) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	b := s.buf
	for len(b) > 0 {
		n, err := s.w.Write(b)
		b = b[n:]
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			s.buf = s.buf[:0]
			return err
		}
	}
	s.buf = s.buf[:0]
	return nil
}

func (s *WriterSink) PutByte(b byte) error {
	if len(s.buf) == cap(s.buf) {
		if err := s.flush(); err != nil {
			return err
		}
	}
	s.buf = append(s.buf, b)
	return nil
}

// PutBytes appends a run of bytes, optionally reversed in flight. When the
// run fits in the remaining buffer capacity it is appended; otherwise the
// buffer is flushed, any whole buffer-sized spans of the input are written
// directly (bypassing the buffer), and the tail is retained buffered.
func (s *WriterSink) PutBytes(b []byte, flipped bool) error {
	if flipped {
		rev := make([]byte, len(b))
		for i, v := range b {
			rev[len(b)-1-i] = v
		}
		b = rev
	}

	if len(s.buf)+len(b) <= cap(s.buf) {
		s.buf = append(s.buf, b...)
		return nil
	}

	if err := s.flush(); err != nil {
		return err
	}

	span := cap(s.buf)
	for len(b) > span {
		n, err := s.w.Write(b[:span])
		b = b[n:]
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return err
		}
	}
	s.buf = append(s.buf, b...)
	return nil
}

// Finish flushes any remaining buffered output. The WriterSink must not
// be used afterwards; call Writer to retrieve the underlying stream.
func (s *WriterSink) Finish() error {
	return s.flush()
}

// Writer returns the underlying io.Writer. Valid after Finish returns.
func (s *WriterSink) Writer() io.Writer { return s.w }
