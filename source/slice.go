package source

// SliceSource is the trivial Source specialization over an in-memory byte
// slice. Every window it hands out is Persistent (it borrows directly from
// the caller's slice) unless flipping is requested, in which case it
// materializes a Copied, reversed window instead.
type SliceSource struct {
	buf []byte
	pos int
}

var _ Source = (*SliceSource)(nil)

// NewSlice wraps b for reading. The caller must keep b alive and must not
// mutate it for as long as any Window this SliceSource produced (or any
// decoded "borrowed bytes" derived from one) is in use.
func NewSlice(b []byte) *SliceSource {
	return &SliceSource{buf: b}
}

func (s *SliceSource) Next() (byte, error) {
	if s.pos >= len(s.buf) {
		return 0, ErrEof
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *SliceSource) PeekNext() (byte, error) {
	if s.pos >= len(s.buf) {
		return 0, ErrEof
	}
	return s.buf[s.pos], nil
}

func (s *SliceSource) Read(n int, flipped bool) (Window, error) {
	if s.pos >= len(s.buf) {
		return Window{}, ErrEof
	}
	end := s.pos + n
	if end > len(s.buf) {
		end = len(s.buf)
	}
	chunk := s.buf[s.pos:end]
	s.pos = end

	if !flipped {
		return Window{Kind: Persistent, Bytes: chunk}, nil
	}
	rev := make([]byte, len(chunk))
	for i, b := range chunk {
		rev[len(chunk)-1-i] = b
	}
	return Window{Kind: Copied, Bytes: rev}, nil
}

func (s *SliceSource) Consume(n int) (int, error) {
	if s.pos >= len(s.buf) && n > 0 {
		return 0, ErrEof
	}
	end := s.pos + n
	if end > len(s.buf) {
		end = len(s.buf)
	}
	consumed := end - s.pos
	s.pos = end
	return consumed, nil
}

func (s *SliceSource) MaxInstantRead() int {
	return len(s.buf) - s.pos
}

func (s *SliceSource) Finished() bool {
	return s.pos >= len(s.buf)
}
