// Package bytebuffer implements the owned, resizable byte container
// described by spec §4.1: a single-owner value with random access,
// resizing, concatenation, and whole-file I/O in 8 KiB chunks.
//
// A Buffer is not safe for concurrent use by multiple goroutines;
// sharing one across goroutines requires external synchronization, the
// same contract the spec assigns to ByteBuffer.
package bytebuffer

import (
	"errors"
	"io"
	"math"
	"os"

	"github.com/rafaelsantos20/BinaryText/codecerr"
	"github.com/rafaelsantos20/BinaryText/internal/satmath"
)

// chunkSize is the unit both read and write file I/O work in.
const chunkSize = 8 * 1024

// MaxLen is the largest length a Buffer may ever reach.
const MaxLen = math.MaxInt

// Kind enumerates the ByteBuffer error kinds from spec §7.
type Kind byte

const (
	EmptyBuffer Kind = iota + 1
	InvalidArguments
	OpenFile
	ReadFromFile
	WriteToFile
	OutOfRange
	SizeLimit
	Allocation
)

// Error is the ByteBuffer error type.
type Error struct {
	codecerr.Base
}

func newErr(kind Kind, msg string) *Error {
	return &Error{codecerr.New(byte(kind), msg)}
}

// Buffer is an owned, contiguous byte sequence. The zero value is a
// valid empty Buffer.
type Buffer struct {
	data []byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// WithSize returns a zero-filled Buffer of length n.
func WithSize(n int) (*Buffer, error) {
	if n < 0 || n > MaxLen {
		return nil, newErr(SizeLimit, "bytebuffer: size exceeds maximum length")
	}
	if n == 0 {
		return New(), nil
	}
	return &Buffer{data: make([]byte, n)}, nil
}

// FromSlice copies p into a new Buffer. A nil or empty p yields an
// empty Buffer.
func FromSlice(p []byte) (*Buffer, error) {
	if len(p) == 0 {
		return New(), nil
	}
	if len(p) > MaxLen {
		return nil, newErr(SizeLimit, "bytebuffer: size exceeds maximum length")
	}
	b := &Buffer{data: make([]byte, len(p))}
	copy(b.data, p)
	return b, nil
}

// FromFile reads the file at path in full, verbatim, in chunkSize
// chunks.
func FromFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr(OpenFile, "bytebuffer: open file: "+err.Error())
	}
	defer f.Close()

	b := New()
	chunk := make([]byte, chunkSize)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			if satmath.AddOverflows(len(b.data), n, MaxLen) {
				b.Clear()
				return nil, newErr(SizeLimit, "bytebuffer: file exceeds maximum buffer length")
			}
			b.data = append(b.data, chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			b.Clear()
			return nil, newErr(ReadFromFile, "bytebuffer: read file: "+err.Error())
		}
		if n == 0 {
			break
		}
	}
	return b, nil
}

// Len returns the current length of the buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns a read-only view of the buffer's contents. The
// returned slice aliases the buffer; callers must not retain it across
// a subsequent mutation.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// At returns the byte at index i.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= b.Len() {
		return 0, newErr(OutOfRange, "bytebuffer: index out of range")
	}
	return b.data[i], nil
}

// Fill sets every byte in the buffer to v.
func (b *Buffer) Fill(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Resize changes the buffer's length to n, preserving the shared
// prefix of the old and new contents. Grown positions are set to fill,
// defaulting to 0 when omitted.
func (b *Buffer) Resize(n int, fill ...byte) error {
	if n < 0 || n > MaxLen {
		return newErr(SizeLimit, "bytebuffer: size exceeds maximum length")
	}
	var fillByte byte
	if len(fill) > 0 {
		fillByte = fill[0]
	}

	old := b.data
	switch {
	case n == len(old):
		return nil
	case n == 0:
		b.data = nil
	case n < len(old):
		b.data = old[:n:n]
	default:
		nd := make([]byte, n)
		copy(nd, old)
		for i := len(old); i < n; i++ {
			nd[i] = fillByte
		}
		b.data = nd
	}
	return nil
}

// Concat appends other's contents to b (self += other).
func (b *Buffer) Concat(other *Buffer) error {
	if other.Len() == 0 {
		return nil
	}
	if b.Len() == 0 {
		nd := make([]byte, other.Len())
		copy(nd, other.data)
		b.data = nd
		return nil
	}
	if satmath.AddOverflows(b.Len(), other.Len(), MaxLen) {
		b.Clear()
		return newErr(SizeLimit, "bytebuffer: concatenation exceeds maximum buffer length")
	}
	nd := make([]byte, b.Len()+other.Len())
	copy(nd, b.data)
	copy(nd[b.Len():], other.data)
	b.data = nd
	return nil
}

// WriteToFile truncates the file at path and writes the buffer's exact
// contents to it, in chunkSize chunks followed by a final short chunk.
func (b *Buffer) WriteToFile(path string) error {
	if b.Len() == 0 {
		return newErr(EmptyBuffer, "bytebuffer: cannot write empty buffer to file")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return newErr(OpenFile, "bytebuffer: open file: "+err.Error())
	}
	defer f.Close()

	for off := 0; off < len(b.data); off += chunkSize {
		end := off + chunkSize
		if end > len(b.data) {
			end = len(b.data)
		}
		if _, err := f.Write(b.data[off:end]); err != nil {
			return newErr(WriteToFile, "bytebuffer: write file: "+err.Error())
		}
	}
	return nil
}

// Clear resets the buffer to empty.
func (b *Buffer) Clear() {
	b.data = nil
}

// Swap exchanges the contents of b and other.
func (b *Buffer) Swap(other *Buffer) {
	b.data, other.data = other.data, b.data
}

// Equal reports whether b and other hold identical contents.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Len() != other.Len() {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
