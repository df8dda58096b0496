// Package base16 implements the RFC 4648 §8 hex codec: two ASCII
// digits per byte, most significant nibble first. Unlike the
// radix-32/64 family it has no padding and no groups larger than a
// single byte; its variability is entirely in case policy.
package base16

import (
	"github.com/rafaelsantos20/BinaryText/bytebuffer"
	"github.com/rafaelsantos20/BinaryText/codecerr"
)

// Case selects which hex alphabet an encode or decode call accepts.
type Case byte

const (
	Uppercase Case = iota
	Lowercase
	Mixed
)

const invalid = 0xFF

var (
	upperTab = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}
	lowerTab = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

	upperDec, lowerDec, mixedDec = func() (u, l, m [256]byte) {
		for i := range u {
			u[i] = invalid
			l[i] = invalid
			m[i] = invalid
		}
		for i := byte(0); i < 10; i++ {
			u['0'+i] = i
			l['0'+i] = i
			m['0'+i] = i
		}
		for i := byte(0); i < 6; i++ {
			u['A'+i] = 10 + i
			l['a'+i] = 10 + i
			m['A'+i] = 10 + i
			m['a'+i] = 10 + i
		}
		return
	}()
)

// Kind enumerates the Base16 error kinds from spec §7.
type Kind byte

const (
	Reserve Kind = iota + 1
	InvalidCase
	Parse
)

// Error is the Base16 codec's own error type.
type Error struct {
	codecerr.Base
}

func newErr(kind Kind, msg string) *Error {
	return &Error{codecerr.New(byte(kind), msg)}
}

// Option configures an encode or decode call.
type Option func(*config)

type config struct {
	c Case
}

func newConfig(opts []Option) config {
	cfg := config{c: Uppercase}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithCase selects the case policy. Mixed is valid only for decode.
func WithCase(c Case) Option {
	return func(cfg *config) { cfg.c = c }
}

func encodeTable(c Case) (*[16]byte, error) {
	switch c {
	case Uppercase:
		return &upperTab, nil
	case Lowercase:
		return &lowerTab, nil
	case Mixed:
		return nil, newErr(InvalidCase, "base16: mixed case is not valid for encode")
	default:
		return nil, newErr(InvalidCase, "base16: unknown case")
	}
}

func decodeTable(c Case) (*[256]byte, error) {
	switch c {
	case Uppercase:
		return &upperDec, nil
	case Lowercase:
		return &lowerDec, nil
	case Mixed:
		return &mixedDec, nil
	default:
		return nil, newErr(InvalidCase, "base16: unknown case")
	}
}

// EncodedLen returns the encoded length in bytes for n input bytes.
func EncodedLen(n int) int {
	return n * 2
}

// EncodeBytes encodes b and returns the encoded form as a string.
func EncodeBytes(b []byte, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	tab, err := encodeTable(cfg.c)
	if err != nil {
		return "", err
	}

	out := make([]byte, EncodedLen(len(b)))
	for i, v := range b {
		out[i*2] = tab[v>>4]
		out[i*2+1] = tab[v&0x0F]
	}
	return string(out), nil
}

// EncodeText encodes the bytes of s and returns the encoded form.
func EncodeText(s string, opts ...Option) (string, error) {
	return EncodeBytes([]byte(s), opts...)
}

func isSkippable(c byte) bool {
	return c == ' ' || c == '\n'
}

// decode scans src ignoring whitespace, returning the decoded bytes.
// An odd trailing digit is reconstructed as the high nibble of a
// zero-padded byte, per spec §4.2.
func decode(dec *[256]byte, src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)/2+1)

	haveHigh := false
	var high byte

	for _, c := range src {
		if isSkippable(c) {
			continue
		}
		v := dec[c]
		if v == invalid {
			return nil, newErr(Parse, "base16: invalid character")
		}
		if !haveHigh {
			high = v
			haveHigh = true
			continue
		}
		out = append(out, high<<4|v)
		haveHigh = false
	}

	if haveHigh {
		out = append(out, high<<4)
	}

	return out, nil
}

// DecodeText decodes s and returns the decoded bytes as a string.
func DecodeText(s string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	tab, err := decodeTable(cfg.c)
	if err != nil {
		return "", err
	}
	out, err := decode(tab, []byte(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeBytes decodes s into a bytebuffer.Buffer.
func DecodeBytes(s string, opts ...Option) (*bytebuffer.Buffer, error) {
	cfg := newConfig(opts)
	tab, err := decodeTable(cfg.c)
	if err != nil {
		return nil, err
	}
	out, err := decode(tab, []byte(s))
	if err != nil {
		return nil, err
	}
	buf, err := bytebuffer.FromSlice(out)
	if err != nil {
		return nil, newErr(Reserve, "base16: "+err.Error())
	}
	return buf, nil
}
