// Package base32hex implements the RFC 4648 §7 Base32Hex codec:
// identical to Base32 except the alphabet is 0-9, A-V, chosen so that
// encoded values sort in the same order as their decoded bytes.
package base32hex

import (
	"github.com/rafaelsantos20/BinaryText/bytebuffer"
	"github.com/rafaelsantos20/BinaryText/codecerr"
	"github.com/rafaelsantos20/BinaryText/internal/rfc4648"
)

const alphabetChars = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

var alphabet = rfc4648.NewAlphabet(alphabetChars)

// Kind enumerates the Base32Hex error kinds from spec §7.
type Kind byte

const (
	Reserve Kind = iota + 1
	Parse
)

// Error is the Base32Hex codec's own error type.
type Error struct {
	codecerr.Base
}

func newErr(kind Kind, msg string) *Error {
	return &Error{codecerr.New(byte(kind), msg)}
}

func wrapEngineErr(err error) *Error {
	return newErr(Parse, "base32hex: "+err.Error())
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
func WithPadding(v bool) Option {
	return func(c *config) { c.withPadding = v }
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
		return nil, newErr(Reserve, "base32hex: "+err.Error())
	}
	return buf, nil
}
