// Package str contains String, an owned sequence of bytes that is known to be valid UTF-8.
package str

import (
	"fmt"
	"unicode/utf8"
)

// String owns a byte sequence holding UTF-8 text.
//
// Validity is a precondition, not a guarantee: String never checks its bytes after construction,
// and [FromUTF8Unchecked] doesn't check them at all.
type String struct {
	bytes []byte
}

// FromUTF8Unchecked returns a String that takes ownership of b.
//
// The caller must make sure that b is valid UTF-8 and must not use b afterwards. Nothing is
// verified; a String built from invalid bytes silently carries them.
func FromUTF8Unchecked(b []byte) String {
	return String{bytes: b}
}

// FromUTF8 is like [FromUTF8Unchecked], but returns an [*InvalidUTF8Error] if b isn't valid
// UTF-8.
func FromUTF8(b []byte) (String, error) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return String{}, &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	return String{bytes: b}, nil
}

// AsBytes returns the owned bytes. The result must not be modified.
func (s String) AsBytes() []byte {
	return s.bytes
}

// Len returns the length in bytes.
func (s String) Len() int {
	return len(s.bytes)
}

func (s String) String() string {
	return string(s.bytes)
}

// InvalidUTF8Error is returned by [FromUTF8] for bytes that aren't valid UTF-8.
type InvalidUTF8Error struct {
	// Offset is the position of the first invalid byte.
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence at offset %d", e.Offset)
}
