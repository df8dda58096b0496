package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHelp(t *testing.T) {
	t.Parallel()

	a, err := Parse([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, a.Help)
}

func TestParseMinimalEncodeText(t *testing.T) {
	t.Parallel()

	a, err := Parse([]string{"--encode-text", "--input-string=Hello", "--algorithm=base16"})
	require.NoError(t, err)

	assert.Equal(t, EncodeText, a.Task)
	assert.Equal(t, Base16, a.Algorithm)
	assert.Equal(t, "Hello", a.InputString)
}

func TestParseDefaultsToBase16(t *testing.T) {
	t.Parallel()

	a, err := Parse([]string{"--encode-text", "--input-string=Hello"})
	require.NoError(t, err)
	assert.Equal(t, Base16, a.Algorithm)
}

func TestParseDuplicateTaskFlagsRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-text", "--decode-text", "--input-string=x"})
	require.Error(t, err)
}

func TestParseMixedCaseOnEncodeRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-text", "--input-string=x", "--case=mixed"})
	require.Error(t, err)
}

func TestParseWithoutPaddingOnDecodeRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--decode-text", "--input-string=x", "--algorithm=base32", "--without-padding"})
	require.Error(t, err)
}

func TestParseOptionPairedWithWrongAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-text", "--input-string=x", "--algorithm=base32", "--case=uppercase"})
	require.Error(t, err)

	_, err = Parse([]string{"--encode-text", "--input-string=x", "--algorithm=base16", "--without-padding"})
	require.Error(t, err)

	_, err = Parse([]string{"--encode-text", "--input-string=x", "--algorithm=base16", "--fold-spaces"})
	require.Error(t, err)
}

func TestParseMissingInputRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-text"})
	require.Error(t, err)
}

func TestParseMissingOutputForDecodeBinaryRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--decode-binary", "--input-file=in.b16"})
	require.Error(t, err)
}

func TestParseDecodeBinaryWithInputAndOutputFile(t *testing.T) {
	t.Parallel()

	a, err := Parse([]string{"--decode-binary", "--input-file=in.b16", "--output-file=out.bin"})
	require.NoError(t, err)
	assert.Equal(t, DecodeBinary, a.Task)
	assert.True(t, a.HasInputFilePath())
	assert.True(t, a.HasOutputFilePath())
}

func TestParseInputStringOnEncodeBinaryRejected(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-binary", "--input-string=x", "--output-file=out.txt"})
	require.Error(t, err)
}

func TestParseConflictingInputSources(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-text", "--input-string=x", "--input-file=y"})
	require.Error(t, err)
}

func TestParseInvalidAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--encode-text", "--input-string=x", "--algorithm=base99"})
	require.Error(t, err)
}

func TestParseInvalidArgument(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"--not-a-real-flag"})
	require.Error(t, err)
}

func TestParseAscii85Options(t *testing.T) {
	t.Parallel()

	a, err := Parse([]string{
		"--encode-text", "--input-string=x", "--algorithm=ascii85",
		"--fold-spaces", "--adobe-mode",
	})
	require.NoError(t, err)
	assert.Equal(t, Enabled, a.SpaceFolding)
	assert.Equal(t, Enabled, a.AdobeMode)
}
