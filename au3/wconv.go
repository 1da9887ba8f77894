package au3

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeUTF16LE encodes s as NUL-terminated UTF-16LE bytes. Invalid UTF-8
// is replaced with U+FFFD.
func EncodeUTF16LE(s string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(strings.ToValidUTF8(s, "\uFFFD")))
	if err != nil {
		// Unreachable for valid UTF-8 input.
		b = nil
	}
	return append(b, 0, 0)
}

// DecodeUTF16LE decodes UTF-16LE bytes up to the first NUL code unit.
// A trailing odd byte is ignored.
func DecodeUTF16LE(b []byte) string {
	b = b[:len(b)&^1]
	for i := 0; i < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(s)
}

// EncodeUTF16 returns s as NUL-terminated UTF-16 code units, the form
// expected by LPCWSTR parameters.
func EncodeUTF16(s string) []uint16 {
	b := EncodeUTF16LE(s)
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u
}

// DecodeUTF16 converts a UTF-16 buffer filled by a native call, stopping at
// the first NUL.
func DecodeUTF16(u []uint16) string {
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	return DecodeUTF16LE(b)
}
