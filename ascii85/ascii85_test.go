package ascii85

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTextVector(t *testing.T) {
	t.Parallel()

	got, err := EncodeText("Man ")
	require.NoError(t, err)
	assert.Equal(t, "9jqo^", got)

	back, err := DecodeText(got)
	require.NoError(t, err)
	assert.Equal(t, "Man ", back)
}

func TestEncodeZeroGroupAdobeMode(t *testing.T) {
	t.Parallel()

	got, err := EncodeBytes([]byte{0, 0, 0, 0}, WithAdobeMode(true))
	require.NoError(t, err)
	assert.Equal(t, "<~z~>", got)
}

func TestEncodeSpaceFolding(t *testing.T) {
	t.Parallel()

	got, err := EncodeText("    ", WithSpaceFolding(true))
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestEncodeEmptyAdobeMode(t *testing.T) {
	t.Parallel()

	got, err := EncodeBytes(nil, WithAdobeMode(true))
	require.NoError(t, err)
	assert.Equal(t, "<~~>", got)
}

func TestDecodeYWithoutFoldingFails(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("y")
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.EqualValues(t, Parse, e.Kind)
}

func TestDecodeAdobeModeMissingDelimiters(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("z", WithAdobeMode(true))
	require.Error(t, err)
}

func TestDecodeAdobeModeToleratesSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	leading, err := DecodeText(" <~z~>", WithAdobeMode(true))
	require.NoError(t, err)
	is.Equal([]byte{0, 0, 0, 0}, []byte(leading))

	trailing, err := DecodeText("<~z~>\n", WithAdobeMode(true))
	require.NoError(t, err)
	is.Equal([]byte{0, 0, 0, 0}, []byte(trailing))

	both, err := DecodeText("\n <~z~> \n", WithAdobeMode(true))
	require.NoError(t, err)
	is.Equal([]byte{0, 0, 0, 0}, []byte(both))
}

func TestDecodeAdobeModeRejectsNonWhitespaceBeforeDelimiter(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("xx<~z~>", WithAdobeMode(true))
	require.Error(t, err)
}

func TestDecodeInvalidChar(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("9jq{^")
	require.Error(t, err)
}

func TestDecodeDanglingSingleDigit(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("9")
	require.Error(t, err)
}

func TestRoundTripEveryRaggedTail(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for n := 0; n <= 12; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*37 + 5)
		}

		for _, adobe := range []bool{true, false} {
			for _, fold := range []bool{true, false} {
				opts := []Option{WithAdobeMode(adobe), WithSpaceFolding(fold)}

				enc, err := EncodeBytes(src, opts...)
				require.NoError(t, err)

				buf, err := DecodeBytes(enc, opts...)
				require.NoError(t, err, "n=%d adobe=%v fold=%v enc=%q", n, adobe, fold, enc)
				is.Equal(string(src), string(buf.Bytes()), "n=%d adobe=%v fold=%v", n, adobe, fold)
			}
		}
	}
}

func TestDecodeIgnoresWhitespace(t *testing.T) {
	t.Parallel()

	plain, err := DecodeText("9jqo^")
	require.NoError(t, err)

	spaced, err := DecodeText("9j\nqo ^")
	require.NoError(t, err)

	assert.Equal(t, plain, spaced)
}

func TestZMidGroupRejected(t *testing.T) {
	t.Parallel()

	_, err := DecodeText("9z")
	require.Error(t, err)
}
