// Package ascii85 implements the legacy btoa/Adobe Ascii85 codec:
// radix-85 groups of 4 input bytes to 5 output symbols, with the 'z'
// all-zero shortcut, an optional 'y' all-space shortcut (space
// folding), and optional Adobe '<~' / '~>' delimiter framing.
package ascii85

import (
	"math"

	"github.com/rafaelsantos20/BinaryText/bytebuffer"
	"github.com/rafaelsantos20/BinaryText/codecerr"
)

const (
	digitMin = '!' // 0x21, value 0
	digitMax = 'u' // 0x75, value 84
	zeroChar = 'z'
	spaceChar = 'y'
)

// Kind enumerates the Ascii85 error kinds from spec §7.
type Kind byte

const (
	Reserve Kind = iota + 1
	Parse
)

// Error is the Ascii85 codec's own error type.
type Error struct {
	codecerr.Base
}

func newErr(kind Kind, msg string) *Error {
	return &Error{codecerr.New(byte(kind), msg)}
}

// Option configures an encode or decode call.
type Option func(*config)

type config struct {
	foldSpaces bool
	adobeMode  bool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithSpaceFolding enables the 'y' shortcut for a full group of four
// ASCII spaces, on both encode and decode.
func WithSpaceFolding(v bool) Option {
	return func(c *config) { c.foldSpaces = v }
}

// WithAdobeMode wraps encoded output in '<~' / '~>' and requires the
// same framing on decode.
func WithAdobeMode(v bool) Option {
	return func(c *config) { c.adobeMode = v }
}

func encodeGroup(dst []byte, v uint32, digitCount int) []byte {
	var digits [5]byte
	for i := 4; i >= 0; i-- {
		digits[i] = byte(v%85) + digitMin
		v /= 85
	}
	return append(dst, digits[:digitCount]...)
}

func encode(b []byte, cfg config) []byte {
	out := make([]byte, 0, len(b)+len(b)/4+8)
	if cfg.adobeMode {
		out = append(out, '<', '~')
	}

	n := len(b)
	for i := 0; i < n; i += 4 {
		var chunk [4]byte
		full := i+4 <= n
		if full {
			copy(chunk[:], b[i:i+4])
		} else {
			copy(chunk[:], b[i:n])
		}

		v := uint32(chunk[0])<<24 | uint32(chunk[1])<<16 | uint32(chunk[2])<<8 | uint32(chunk[3])

		switch {
		case full && v == 0:
			out = append(out, zeroChar)
		case full && cfg.foldSpaces && v == 0x20202020:
			out = append(out, spaceChar)
		case full:
			out = encodeGroup(out, v, 5)
		default:
			r := n - i
			out = encodeGroup(out, v, r+1)
		}
	}

	if cfg.adobeMode {
		out = append(out, '~', '>')
	}
	return out
}

// EncodeBytes encodes b and returns the encoded form as a string.
func EncodeBytes(b []byte, opts ...Option) (string, error) {
	return string(encode(b, newConfig(opts))), nil
}

// EncodeText encodes the bytes of s and returns the encoded form.
func EncodeText(s string, opts ...Option) (string, error) {
	return EncodeBytes([]byte(s), opts...)
}

func isFramingWhitespace(c byte) bool {
	return c == ' ' || c == '\n'
}

// stripAdobeFraming locates the '<~' opening and '~>' closing
// delimiters, allowing only whitespace before the opening and after
// the closing, mirroring the forward/backward scan in
// original_source/BinaryText.hpp's Adobe-mode decode.
func stripAdobeFraming(src []byte) ([]byte, error) {
	start := 0
	for start < len(src) && isFramingWhitespace(src[start]) {
		start++
	}
	if start+1 >= len(src) || src[start] != '<' || src[start+1] != '~' {
		return nil, newErr(Parse, "ascii85: missing '<~' prefix")
	}
	start += 2

	end := len(src)
	for end > start && isFramingWhitespace(src[end-1]) {
		end--
	}
	if end-2 < start || src[end-2] != '~' || src[end-1] != '>' {
		return nil, newErr(Parse, "ascii85: missing '~>' suffix")
	}
	end -= 2

	return src[start:end], nil
}

func decode(src []byte, cfg config) ([]byte, error) {
	data := src
	if cfg.adobeMode {
		var err error
		data, err = stripAdobeFraming(data)
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, len(data))
	var digits [5]byte
	count := 0

	for _, c := range data {
		if c == ' ' || c == '\n' {
			continue
		}

		if c == zeroChar {
			if count != 0 {
				return nil, newErr(Parse, "ascii85: 'z' shortcut cannot appear mid-group")
			}
			out = append(out, 0, 0, 0, 0)
			continue
		}
		if c == spaceChar {
			if count != 0 {
				return nil, newErr(Parse, "ascii85: 'y' shortcut cannot appear mid-group")
			}
			if !cfg.foldSpaces {
				return nil, newErr(Parse, "ascii85: 'y' shortcut requires space folding")
			}
			out = append(out, ' ', ' ', ' ', ' ')
			continue
		}
		if c < digitMin || c > digitMax {
			return nil, newErr(Parse, "ascii85: invalid character")
		}

		digits[count] = c - digitMin
		count++
		if count == 5 {
			v, err := groupValue(digits[:])
			if err != nil {
				return nil, err
			}
			out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
			count = 0
		}
	}

	if count == 1 {
		return nil, newErr(Parse, "ascii85: dangling single digit in final group")
	}
	if count > 0 {
		r := count - 1
		for i := count; i < 5; i++ {
			digits[i] = digitMax - digitMin
		}
		v, err := groupValue(digits[:])
		if err != nil {
			return nil, err
		}
		var tail [4]byte
		tail[0], tail[1], tail[2], tail[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
		out = append(out, tail[:r]...)
	}

	return out, nil
}

func groupValue(digits []byte) (uint32, error) {
	var v uint64
	for _, d := range digits {
		v = v*85 + uint64(d)
	}
	if v > math.MaxUint32 {
		return 0, newErr(Parse, "ascii85: group value exceeds 32 bits")
	}
	return uint32(v), nil
}

// DecodeText decodes s and returns the decoded bytes as a string.
func DecodeText(s string, opts ...Option) (string, error) {
	out, err := decode([]byte(s), newConfig(opts))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeBytes decodes s into a bytebuffer.Buffer.
func DecodeBytes(s string, opts ...Option) (*bytebuffer.Buffer, error) {
	out, err := decode([]byte(s), newConfig(opts))
	if err != nil {
		return nil, err
	}
	buf, err := bytebuffer.FromSlice(out)
	if err != nil {
		return nil, newErr(Reserve, "ascii85: "+err.Error())
	}
	return buf, nil
}
