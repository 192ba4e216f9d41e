package source

import (
	"errors"
	"io"
)

// DefaultBufferSize is the refill window capacity used when NewReader is
// given no explicit WithBufferSize option (spec.md §4.4 uses 1024).
const DefaultBufferSize = 1024

// Interrupted may be implemented by an error returned from the
// io.Reader wrapped by a ReaderSource to signal that the read was
// aborted by something retryable (e.g. a delivered signal) rather than a
// genuine I/O failure. ReaderSource retries the read when it sees one;
// any other error, or a zero-length read with no error, ends the stream.
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

// Option configures a ReaderSource at construction time.
type Option func(*ReaderSource)

// WithBufferSize overrides the refill buffer's fixed capacity.
func WithBufferSize(n int) Option {
	return func(s *ReaderSource) {
		if n > 0 {
			s.buf = make([]byte, n)
		}
	}
}

// ReaderSource is a Byte Source over a blocking io.Reader, backed by a
// fixed-capacity refill buffer. Unflipped windows it hands out via Read
// are Transient: they alias the internal buffer and are only valid until
// the next call into this ReaderSource. Flipped reads return a Copied
// window.
type ReaderSource struct {
	r        io.Reader
	buf      []byte
	bufLen   int
	index    int
	finished bool
}

var _ Source = (*ReaderSource)(nil)

// NewReader wraps r. The returned ReaderSource owns r exclusively for the
// duration of the decode.
func NewReader(r io.Reader, opts ...Option) *ReaderSource {
	s := &ReaderSource{r: r, buf: make([]byte, DefaultBufferSize)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// refill compacts any unread tail to the front of the buffer and performs
// one Read call against the underlying stream. It is a single pass, not a
// fill-to-capacity loop: callers that need more than one refill's worth of
// bytes call refill again (directly, or via Read/Consume's own loop).
func (s *ReaderSource) refill() {
	if s.finished {
		return
	}
	if s.index > 0 {
		n := copy(s.buf, s.buf[s.index:s.bufLen])
		s.bufLen = n
		s.index = 0
	}
	if s.bufLen == len(s.buf) {
		return
	}
	for {
		n, err := s.r.Read(s.buf[s.bufLen:])
		if n > 0 {
			s.bufLen += n
		}
		switch {
		case err != nil:
			if isInterrupted(err) {
				continue
			}
			// Any other read error, including io.EOF, collapses to
			// end-of-stream at this layer; higher layers only ever see
			// ErrEof, never a raw I/O error.
			s.finished = true
			return
		case n == 0:
			s.finished = true
			return
		default:
			return
		}
	}
}

func (s *ReaderSource) Next() (byte, error) {
	if s.index >= s.bufLen {
		s.refill()
		if s.index >= s.bufLen {
			return 0, ErrEof
		}
	}
	b := s.buf[s.index]
	s.index++
	return b, nil
}

func (s *ReaderSource) PeekNext() (byte, error) {
	if s.index >= s.bufLen {
		s.refill()
		if s.index >= s.bufLen {
			return 0, ErrEof
		}
	}
	return s.buf[s.index], nil
}

// Read returns up to n bytes (clamped to the buffer's fixed capacity) as
// a single Transient window (a reversed Copied window when flipped is
// true), refilling at most once. Per spec.md's design
// notes, the decision to refill uses a strict ">" against the buffered
// tail rather than ">=", so a request that is already fully satisfied by
// what's buffered never forces an unnecessary refill.
func (s *ReaderSource) Read(n int, flipped bool) (Window, error) {
	if n <= 0 {
		return Window{Kind: Transient}, nil
	}
	if n > len(s.buf) {
		n = len(s.buf)
	}
	if s.index+n > s.bufLen {
		s.refill()
	}
	avail := s.bufLen - s.index
	if avail == 0 {
		return Window{}, ErrEof
	}
	take := n
	if take > avail {
		take = avail
	}
	chunk := s.buf[s.index : s.index+take]
	s.index += take

	if !flipped {
		return Window{Kind: Transient, Bytes: chunk}, nil
	}
	rev := make([]byte, len(chunk))
	for i, b := range chunk {
		rev[len(chunk)-1-i] = b
	}
	return Window{Kind: Copied, Bytes: rev}, nil
}

func (s *ReaderSource) Consume(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	avail := s.bufLen - s.index
	if avail == 0 {
		s.refill()
		avail = s.bufLen - s.index
		if avail == 0 {
			return 0, ErrEof
		}
	}
	take := n
	if take > avail {
		take = avail
	}
	s.index += take
	return take, nil
}

func (s *ReaderSource) MaxInstantRead() int {
	return s.bufLen - s.index
}

// Finished reports whether the stream has been fully drained. It forces
// one refill attempt when the buffer is currently empty, so a reader that
// has more to give isn't mistakenly reported as finished.
func (s *ReaderSource) Finished() bool {
	if s.index < s.bufLen {
		return false
	}
	if !s.finished {
		s.refill()
	}
	return s.index >= s.bufLen && s.finished
}
