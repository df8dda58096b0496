// Package base32 implements the RFC 4648 §6 Base32 codec: alphabet
// A-Z, 2-7, with '=' padding. Padding is optional on encode and
// tolerated-but-not-required on decode (a canonically padded tail and a
// raw unpadded ragged tail both decode successfully); a malformed
// padding count is a parse error.
package base32

import (
	"github.com/rafaelsantos20/BinaryText/bytebuffer"
	"github.com/rafaelsantos20/BinaryText/codecerr"
	"github.com/rafaelsantos20/BinaryText/internal/rfc4648"
)

const alphabetChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var alphabet = rfc4648.NewAlphabet(alphabetChars)

// Kind enumerates the Base32 error kinds from spec §7.
type Kind byte

const (
	Reserve Kind = iota + 1
	Parse
)

// Error is the Base32 codec's own error type.
type Error struct {
	codecerr.Base
}

func newErr(kind Kind, msg string) *Error {
	return &Error{codecerr.New(byte(kind), msg)}
}

func wrapEngineErr(err error) *Error {
	return newErr(Parse, "base32: "+err.Error())
}

// Option configures an encode or decode call.
type Option func(*config)

type config struct {
	withPadding bool
}

func newConfig(opts []Option) config {
	cfg := config{withPadding: true}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithPadding controls whether encode emits trailing '=' characters.
// It has no effect on decode, which accepts both forms.
func WithPadding(v bool) Option {
	return func(c *config) { c.withPadding = v }
}

// EncodedLen returns the number of symbols produced by encoding n
// bytes with padding enabled.
func EncodedLen(n int) int {
	l := rfc4648.QuintetEncodedLen(n)
	if n%5 != 0 {
		l += quintetPadCount(n)
	}
	return l
}

func quintetPadCount(n int) int {
	switch n % 5 {
	case 1:
		return 6
	case 2:
		return 4
	case 3:
		return 3
	case 4:
		return 1
	default:
		return 0
	}
}

// EncodeBytes encodes b and returns the encoded form as a string.
func EncodeBytes(b []byte, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	return string(rfc4648.QuintetEncode(alphabet, b, cfg.withPadding)), nil
}

// EncodeText encodes the bytes of s and returns the encoded form.
func EncodeText(s string, opts ...Option) (string, error) {
	return EncodeBytes([]byte(s), opts...)
}

// DecodeText decodes s and returns the decoded bytes as a string.
func DecodeText(s string, opts ...Option) (string, error) {
	out, err := rfc4648.QuintetDecode(alphabet, []byte(s))
	if err != nil {
		return "", wrapEngineErr(err)
	}
	return string(out), nil
}

// DecodeBytes decodes s into a bytebuffer.Buffer.
func DecodeBytes(s string, opts ...Option) (*bytebuffer.Buffer, error) {
	out, err := rfc4648.QuintetDecode(alphabet, []byte(s))
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	buf, err := bytebuffer.FromSlice(out)
	if err != nil {
		return nil, newErr(Reserve, "base32: "+err.Error())
	}
	return buf, nil
}
