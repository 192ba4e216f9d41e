// Package dbor implements DBOR (Dense Binary Object Representation), a
// CBOR-derived, self-describing binary serialization format built for
// fast encode/decode of deeply nested, schema-driven data. Every value
// starts with one header byte packing a 3-bit major type and a 5-bit
// minor value; integer and length payloads step through 1/2/4/8-byte
// big-endian widths, with the encoder always choosing the narrowest
// width that losslessly represents the value.
//
// Components:
//   - source.Source / sink.Sink: the pull/push byte-level interfaces the
//     coders drive. SliceSource/VectorSink operate over in-memory
//     buffers; ReaderSource/WriterSink operate over a blocking
//     io.Reader/io.Writer behind a fixed-capacity refill/flush window.
//   - Decoder: consumes a Source, dispatches on the wire's major tag,
//     and invokes a driver-supplied Visitor.
//   - Encoder: accepts typed Emit* calls from a driver and writes the
//     corresponding header and payload to a Sink.
//
// Deliberately out of scope: the generic data-model walker that turns a
// host struct/enum/map into a sequence of Visitor calls or Emit* calls.
// Decoder and Encoder are the wire-level primitives such a walker is
// built on top of; this package does not include one itself beyond the
// minimal dynamic Value type in the codec subpackage, used by this
// repository's own tests and cmd/dborcat.
//
// Wire layout:
//
//	header byte: major(3 bits) | minor(5 bits)
//	Uint     0..23 inline, 24/25/26/27 -> 1/2/4/8 BE bytes
//	Int      0..15 inline, 16..23 -> -8..-1 inline, 24..27 -> BE two's complement
//	Misc     0 false, 1 true, 2 unit, 3 none, 4 f32, 5 f64
//	Variant  0..26 discriminant width code, 27 -> sub-length-prefixed name; then 1 value
//	Seq      width code -> length N, then N values
//	Bytes    width code -> length N, then N raw bytes
//	Map      width code -> length N, then N (key, value) pairs
//	Reserved always a decode error
package dbor
