// Package sink implements the DBOR Byte Sink: a push interface accepting
// encoded output one byte, or one run of bytes, at a time.
//
// Two implementations are provided. VectorSink grows an in-memory []byte.
// WriterSink buffers writes over a blocking io.Writer and flushes in
// fixed-capacity spans, exactly as spec.md §3 and §4.5 describe.
package sink

// Sink is the push-style Byte Sink contract (spec.md §4.5).
type Sink interface {
	// PutByte appends a single byte.
	PutByte(b byte) error
	// PutBytes appends a run of bytes. If flipped is true, the run is
	// reversed in flight. The dbor Encoder always passes false: it builds
	// big-endian bytes by explicit shifting.
	PutBytes(b []byte, flipped bool) error
	// Finish flushes any buffered output. The Sink must not be used again
	// afterwards.
	Finish() error
}
