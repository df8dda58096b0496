package base32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabetTables(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for i := 0; i < 256; i++ {
		c := byte(i)
		idx := strings.IndexByte(alphabetChars, c)
		if idx == -1 {
			is.EqualValues(0xFF, alphabet.Decode[c])
			continue
		}
		is.EqualValues(idx, alphabet.Decode[c])
		is.Equal(c, alphabet.Encode[idx])
	}
}
