package rfc4648

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSextetAlphabet = NewAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

func TestSextetEncodedLen(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal(0, SextetEncodedLen(0))
	is.Equal(2, SextetEncodedLen(1))
	is.Equal(3, SextetEncodedLen(2))
	is.Equal(4, SextetEncodedLen(3))
	is.Equal(8, SextetEncodedLen(6))
}

func TestSextetEncodeVector(t *testing.T) {
	t.Parallel()

	got := SextetEncode(testSextetAlphabet, []byte("foobar"), true)
	assert.Equal(t, "Zm9vYmFy", string(got))

	unpadded := SextetEncode(testSextetAlphabet, []byte("fo"), false)
	assert.Equal(t, "Zm8", string(unpadded))
}

func TestSextetDecodeInvalidLength(t *testing.T) {
	t.Parallel()

	_, err := SextetDecode(testSextetAlphabet, []byte("Z"))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestSextetDecodeInvalidPadding(t *testing.T) {
	t.Parallel()

	_, err := SextetDecode(testSextetAlphabet, []byte("Zm9v===="))
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestSextetRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 20; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*7 + 1)
		}

		for _, pad := range []bool{true, false} {
			enc := SextetEncode(testSextetAlphabet, src, pad)
			dec, err := SextetDecode(testSextetAlphabet, enc)
			require.NoError(t, err, "n=%d pad=%v", n, pad)
			assert.Equal(t, string(src), string(dec), "n=%d pad=%v", n, pad)
		}
	}
}
