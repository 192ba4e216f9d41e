package sink

// VectorSink accumulates encoded output into an in-memory, growing byte
// slice. It is the Sink used when the caller wants the encoded DBOR value
// as a []byte rather than streamed to an io.Writer.
type VectorSink struct {
	buf []byte
}

var _ Sink = (*VectorSink)(nil)

// NewVector returns an empty VectorSink. capHint pre-sizes the backing
// array to reduce reallocations when the caller has an estimate of the
// final encoded size; 0 is a valid "no estimate" value.
func NewVector(capHint int) *VectorSink {
	var buf []byte
	if capHint > 0 {
		buf = make([]byte, 0, capHint)
	}
	return &VectorSink{buf: buf}
}

func (s *VectorSink) PutByte(b byte) error {
	s.buf = append(s.buf, b)
	return nil
}

func (s *VectorSink) PutBytes(b []byte, flipped bool) error {
	if !flipped {
		s.buf = append(s.buf, b...)
		return nil
	}
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	s.buf = append(s.buf, rev...)
	return nil
}

// Finish is a no-op for VectorSink; call Bytes to retrieve the result.
func (s *VectorSink) Finish() error { return nil }

// Bytes returns the accumulated output. Valid after Finish has been
// called (or at any point, since VectorSink has no buffering to flush).
func (s *VectorSink) Bytes() []byte { return s.buf }
