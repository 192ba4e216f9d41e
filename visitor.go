package dbor

// Visitor is the driver-facing contract a generic data-model walker
// implements to consume events from Decoder (spec.md §6). Decoder always
// calls exactly one Visit* method per requested value, passing whichever
// wire-accurate width or variant shape was actually on the wire; a real
// driver widens narrower-than-requested numeric visits itself (e.g. a
// driver asked to decode a host int32 still accepts a VisitU8 call).
//
// Building a full struct/enum/map walker on top of Visitor is explicitly
// out of this package's scope (spec.md §1); the codec package's Value
// type is a minimal reference implementation used by this repository's
// own tests and cmd/dborcat.
type Visitor interface {
	VisitBool(v bool) error

	VisitU8(v uint8) error
	VisitU16(v uint16) error
	VisitU32(v uint32) error
	VisitU64(v uint64) error

	VisitI8(v int8) error
	VisitI16(v int16) error
	VisitI32(v int32) error
	VisitI64(v int64) error

	VisitF32(v float32) error
	VisitF64(v float64) error

	VisitChar(v rune) error

	// VisitBorrowedBytes is used when the decoded window is Persistent:
	// b aliases bytes the caller's original input owns and keeps alive.
	VisitBorrowedBytes(b []byte) error
	// VisitBytes is used for Transient or Copied windows: b is either
	// only valid until the next call into the Decoder's Source, or an
	// independently owned copy. Either way the visitor must copy it to
	// retain it past the current call.
	VisitBytes(b []byte) error

	VisitNone() error
	// VisitSome is invoked with the same *Decoder, re-entered so the
	// visitor can decode the option's inner value with whatever typed
	// Decode* call fits the expected inner type.
	VisitSome(d *Decoder) error

	VisitUnit() error

	VisitSeq(a SeqAccess) error
	VisitMap(a MapAccess) error
	VisitEnum(a EnumAccess) error
}

// SeqAccess lets a driver pull a Seq's elements one at a time. Len is the
// header's declared element count and never changes as Next is called.
type SeqAccess interface {
	Len() int
	// Next decodes the next element by invoking fn with the Decoder
	// re-entered for that element. ok is false once Len elements have
	// already been produced, and fn is not called in that case.
	Next(fn func(d *Decoder) error) (ok bool, err error)
}

// MapAccess lets a driver pull a Map's key/value pairs one at a time,
// mirroring serde's next_key/next_value split so keys and values can be
// decoded as different host types.
type MapAccess interface {
	Len() int
	// NextKey decodes the next pair's key. ok is false once Len pairs
	// have already been produced.
	NextKey(fn func(d *Decoder) error) (ok bool, err error)
	// NextValue decodes the value for the key most recently produced by
	// NextKey. Calling it without a preceding, still-unpaired NextKey is
	// a driver error.
	NextValue(fn func(d *Decoder) error) error
}

// EnumAccess lets a driver resolve a Variant's (or bare-Uint
// unit-variant's) discriminant and then its payload.
type EnumAccess interface {
	// Identifier decodes the discriminant, invoking fn with either a
	// numeric id or a named byte-string identifier.
	Identifier(fn func(id Identifier) error) error
	// Payload decodes the variant's single payload value. For a
	// bare-Uint unit-variant (no Variant wrapper on the wire) this
	// invokes fn with a Decoder that immediately yields Unit, consuming
	// no further bytes from the original source.
	Payload(fn func(d *Decoder) error) error
	// Wrapped reports whether a Variant header (discriminant + payload)
	// was on the wire, as opposed to a bare Uint unit-variant with no
	// wrapper. A driver that needs to re-encode byte-for-byte must
	// preserve this distinction rather than inferring it from the
	// payload's shape.
	Wrapped() bool
}

// Identifier is what EnumAccess.Identifier and Decoder.DecodeIdentifier
// hand to a driver: either a numeric discriminant, or a named
// byte-string identifier (spec.md §9 "Identifier as bytes" — a driver
// must accept both forms).
type Identifier struct {
	IsName bool
	Num    uint32

	// Name is only meaningful when IsName is true. NameBorrowed reports
	// whether Name aliases Persistent source bytes (safe to retain) or
	// is Transient/Copied (must be copied by the driver to retain it).
	Name         []byte
	NameBorrowed bool
}
