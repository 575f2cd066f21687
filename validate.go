package md

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}

func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '\v', '\f':
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitize drops control characters so that the document cannot smuggle
// escape sequences into the output. src must be valid UTF-8. The result
// aliases src when nothing had to be dropped.
func sanitize(src []byte) []byte {
	clean := true
	for _, b := range src {
		if b < 0x80 && isControlRune(rune(b)) {
			clean = false
			break
		}
	}
	if clean {
		return src
	}
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if !isControlRune(r) {
			dst = append(dst, src[i:i+size]...)
		}
		i += size
	}
	return dst
}
