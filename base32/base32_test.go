package base32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTextVector(t *testing.T) {
	t.Parallel()

	got, err := EncodeText("foobar")
	require.NoError(t, err)
	assert.Equal(t, "MZXW6YTBOI======", got)
}

func TestEncodeTextWithoutPadding(t *testing.T) {
	t.Parallel()

	got, err := EncodeText("foobar", WithPadding(false))
	require.NoError(t, err)
	assert.Equal(t, "MZXW6YTBOI", got)
}

func TestDecodeAcceptsBothPaddingForms(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	padded, err := DecodeText("MZXW6YTBOI======")
	require.NoError(t, err)
	is.Equal("foobar", padded)

	unpadded, err := DecodeText("MZXW6YTBOI")
	require.NoError(t, err)
	is.Equal("foobar", unpadded)
}

func TestRoundTripEveryRaggedTail(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for n := 0; n <= 12; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte('a' + i%26)
		}

		for _, padding := range []bool{true, false} {
			enc, err := EncodeBytes(src, WithPadding(padding))
			require.NoError(t, err)

			dec, err := DecodeText(enc)
			require.NoError(t, err, "n=%d padding=%v enc=%q", n, padding, enc)
			is.Equal(string(src), dec, "n=%d padding=%v", n, padding)
		}
	}
}

func TestDecodeInvalidChar(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("MZXW6YTB1I======")
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.EqualValues(t, Parse, e.Kind)
}

func TestDecodeInvalidPaddingCount(t *testing.T) {
	t.Parallel()

	// "MZXW6Y" is six valid symbols; a two-character pad run is not
	// among the legal counts {0,1,3,4,6}.
	_, err := DecodeText("MZXW6Y==")
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	s, err := DecodeText("")
	require.NoError(t, err)
	is.Equal("", s)

	e, err := EncodeText("")
	require.NoError(t, err)
	is.Equal("", e)
}

func TestDecodeBytesProducesBuffer(t *testing.T) {
	t.Parallel()

	buf, err := DecodeBytes("MZXW6YTBOI======")
	require.NoError(t, err)
	assert.Equal(t, "foobar", string(buf.Bytes()))
}

func TestEncodeSurfaceEquivalence(t *testing.T) {
	t.Parallel()

	text := "the quick brown fox"

	fromText, err := EncodeText(text)
	require.NoError(t, err)
	fromBytes, err := EncodeBytes([]byte(text))
	require.NoError(t, err)

	assert.Equal(t, fromText, fromBytes)
}
