// Package base64 implements the RFC 4648 §4 Base64 codec: alphabet
// A-Z, a-z, 0-9, +, /, with '=' padding. As with base32, encode
// padding is optional and decode tolerates both a canonically padded
// tail and a raw unpadded ragged tail.
package base64

import (
	"github.com/rafaelsantos20/BinaryText/bytebuffer"
	"github.com/rafaelsantos20/BinaryText/codecerr"
	"github.com/rafaelsantos20/BinaryText/internal/rfc4648"
)

const alphabetChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var alphabet = rfc4648.NewAlphabet(alphabetChars)

// Kind enumerates the Base64 error kinds from spec §7.
type Kind byte

const (
	Reserve Kind = iota + 1
	Parse
)

// Error is the Base64 codec's own error type.
type Error struct {
	codecerr.Base
}

func newErr(kind Kind, msg string) *Error {
	return &Error{codecerr.New(byte(kind), msg)}
}

func wrapEngineErr(err error) *Error {
	return newErr(Parse, "base64: "+err.Error())
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
	return string(rfc4648.SextetEncode(alphabet, b, cfg.withPadding)), nil
}

// EncodeText encodes the bytes of s and returns the encoded form.
func EncodeText(s string, opts ...Option) (string, error) {
	return EncodeBytes([]byte(s), opts...)
}

// DecodeText decodes s and returns the decoded bytes as a string.
func DecodeText(s string, opts ...Option) (string, error) {
	out, err := rfc4648.SextetDecode(alphabet, []byte(s))
	if err != nil {
		return "", wrapEngineErr(err)
	}
	return string(out), nil
}

// DecodeBytes decodes s into a bytebuffer.Buffer.
func DecodeBytes(s string, opts ...Option) (*bytebuffer.Buffer, error) {
	out, err := rfc4648.SextetDecode(alphabet, []byte(s))
	if err != nil {
		return nil, wrapEngineErr(err)
	}
	buf, err := bytebuffer.FromSlice(out)
	if err != nil {
		return nil, newErr(Reserve, "base64: "+err.Error())
	}
	return buf, nil
}
