// Package source implements the DBOR Byte Source: a pull interface that
// yields decoded input one byte (or one borrowed window) at a time.
//
// Two implementations are provided. SliceSource wraps an already-resident
// []byte and hands out windows that live as long as the caller holds the
// original slice ("persistent"). ReaderSource wraps a blocking io.Reader
// behind a fixed-capacity refill buffer and hands out windows that are only
// valid until the next read ("transient"), exactly as spec.md §3 and §4.4
// describe.
//
// Nothing here understands DBOR's header/minor grammar; Source only moves
// bytes and tracks their lifetime class. The grammar lives in the dbor
// package's Decoder, one layer up.
package source

import "errors"

// ErrEof is returned when a Source is asked for more bytes than it will
// ever be able to supply.
var ErrEof = errors.New("source: eof")

// WindowKind classifies the lifetime of a byte slice handed out by Read.
type WindowKind int

const (
	// Persistent windows live as long as the input the Source was built
	// over (e.g. a slice held for the whole decode session).
	Persistent WindowKind = iota
	// Transient windows are only valid until the next call into the
	// Source that produced them (the source's internal refill buffer may
	// be overwritten or compacted).
	Transient
	// Copied windows are owned, independently-allocated byte slices.
	Copied
)

func (k WindowKind) String() string {
	switch k {
	case Persistent:
		return "persistent"
	case Transient:
		return "transient"
	case Copied:
		return "copied"
	default:
		return "invalid"
	}
}

// Window is a borrowed (or owned) view over some range of source bytes,
// tagged with its lifetime class. Len() may be shorter than the length
// requested from Read when the source could not satisfy the whole request
// in one call; the caller is expected to loop.
type Window struct {
	Kind  WindowKind
	Bytes []byte
}

func (w Window) Len() int { return len(w.Bytes) }

// Source is the pull-style Byte Source contract (spec.md §4.4).
type Source interface {
	// Next yields the next single byte, or ErrEof if none remain.
	Next() (byte, error)
	// PeekNext is Next without advancing the read position.
	PeekNext() (byte, error)
	// Read returns up to n consecutive bytes as a single window. The
	// returned window may be shorter than n (never longer); callers must
	// loop, re-invoking Read for the remainder, until they have collected
	// n bytes or receive ErrEof. If flipped is true and the source must
	// materialize an owned copy to satisfy the request, that copy is
	// byte-reversed in place (used by write-side flipping only; read-side
	// callers should pass false).
	Read(n int, flipped bool) (Window, error)
	// Consume advances past n bytes without returning them, refilling as
	// needed. It returns the number of bytes actually consumed, which may
	// be less than n: at end of stream, and for ReaderSource whenever fewer
	// than n bytes are buffered. MustConsume loops for the remainder.
	Consume(n int) (int, error)
	// MaxInstantRead returns how many bytes are available right now
	// without performing a refill.
	MaxInstantRead() int
	// Finished reports whether the source will never yield another byte.
	Finished() bool
}

// MustConsume repeatedly calls Consume until n bytes have been consumed or
// the source reports ErrEof. This is the "must_consume" retry loop
// original_source/src/de/read.rs performs around a single short Consume;
// callers that need to step over a fixed-size payload without reading it
// (e.g. Decoder.ignoreValue) use this instead of calling Consume directly.
func MustConsume(s Source, n int) error {
	for n > 0 {
		got, err := s.Consume(n)
		if got > 0 {
			n -= got
		}
		if err != nil {
			return err
		}
		if got == 0 {
			return ErrEof
		}
	}
	return nil
}
