package rfc4648

// Quintet implements the 5-bit-per-symbol radix conversion shared by
// base32 and base32hex: 5-byte input groups become 8-symbol output
// groups. The bit layout mirrors josephcopenhaver-base32's encode/decode
// loops; what differs per caller is only the Alphabet and the padding
// policy.

// validRaggedQuintetCount reports whether n trailing symbols (with no
// '=' padding at all) form one of the five legal group shapes: no tail
// after the full groups (0) or one of the four ragged tails (2, 4, 5, 7).
func validRaggedQuintetCount(n int) bool {
	switch n {
	case 0, 2, 4, 5, 7:
		return true
	default:
		return false
	}
}

// quintetTailBytes maps a ragged symbol count to the number of decoded
// bytes it yields.
func quintetTailBytes(symCount int) int {
	switch symCount {
	case 2:
		return 1
	case 4:
		return 2
	case 5:
		return 3
	case 7:
		return 4
	default:
		return 0
	}
}

// QuintetEncodedLen returns the number of output symbols for n input
// bytes, before any padding is appended.
func QuintetEncodedLen(n int) int {
	return (n/5)*8 + quintetTailSymbols(n%5)
}

func quintetTailSymbols(r int) int {
	switch r {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 5
	case 4:
		return 7
	default:
		return 0
	}
}

// quintetPadCount is the number of '=' characters appended after a
// ragged tail of the given symbol count so the group reaches 8.
func quintetPadCount(symCount int) int {
	if symCount == 0 {
		return 0
	}
	return 8 - symCount
}

// QuintetEncode encodes src using alphabet a. withPadding controls
// whether a ragged final group is padded out to 8 symbols with '='.
func QuintetEncode(a *Alphabet, src []byte, withPadding bool) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	symLen := QuintetEncodedLen(n)
	outLen := symLen
	tailSyms := quintetTailSymbols(n % 5)
	if withPadding && tailSyms != 0 {
		outLen += quintetPadCount(tailSyms)
	}

	dst := make([]byte, outLen)
	enc := a.Encode
	di := 0

	full := n / 5
	for g := 0; g < full; g++ {
		o := g * 5
		b0, b1, b2, b3, b4 := src[o], src[o+1], src[o+2], src[o+3], src[o+4]

		dst[di] = enc[b0>>3]
		dst[di+1] = enc[((b0<<2)|(b1>>6))&31]
		dst[di+2] = enc[(b1>>1)&31]
		dst[di+3] = enc[((b1<<4)|(b2>>4))&31]
		dst[di+4] = enc[((b2<<1)|(b3>>7))&31]
		dst[di+5] = enc[(b3>>2)&31]
		dst[di+6] = enc[((b3<<3)|(b4>>5))&31]
		dst[di+7] = enc[b4&31]
		di += 8
	}

	switch n % 5 {
	case 1:
		b0 := src[full*5]
		dst[di] = enc[b0>>3]
		dst[di+1] = enc[(b0<<2)&31]
		di += 2
	case 2:
		o := full * 5
		b0, b1 := src[o], src[o+1]
		dst[di] = enc[b0>>3]
		dst[di+1] = enc[((b0<<2)|(b1>>6))&31]
		dst[di+2] = enc[(b1>>1)&31]
		dst[di+3] = enc[(b1<<4)&31]
		di += 4
	case 3:
		o := full * 5
		b0, b1, b2 := src[o], src[o+1], src[o+2]
		dst[di] = enc[b0>>3]
		dst[di+1] = enc[((b0<<2)|(b1>>6))&31]
		dst[di+2] = enc[(b1>>1)&31]
		dst[di+3] = enc[((b1<<4)|(b2>>4))&31]
		dst[di+4] = enc[(b2<<1)&31]
		di += 5
	case 4:
		o := full * 5
		b0, b1, b2, b3 := src[o], src[o+1], src[o+2], src[o+3]
		dst[di] = enc[b0>>3]
		dst[di+1] = enc[((b0<<2)|(b1>>6))&31]
		dst[di+2] = enc[(b1>>1)&31]
		dst[di+3] = enc[((b1<<4)|(b2>>4))&31]
		dst[di+4] = enc[((b2<<1)|(b3>>7))&31]
		dst[di+5] = enc[(b3>>2)&31]
		dst[di+6] = enc[(b3<<3)&31]
		di += 7
	}

	if withPadding {
		for ; di < outLen; di++ {
			dst[di] = '='
		}
	}

	return dst
}

// decodeQuintetGroup decodes exactly 8 valid symbols (no padding) into
// 5 bytes.
func decodeQuintetGroup(dec *[256]byte, src []byte, dst []byte) error {
	c0, c1, c2, c3 := dec[src[0]], dec[src[1]], dec[src[2]], dec[src[3]]
	c4, c5, c6, c7 := dec[src[4]], dec[src[5]], dec[src[6]], dec[src[7]]

	if (c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7) == invalid {
		return ErrInvalidChar
	}

	dst[0] = c0<<3 | c1>>2
	dst[1] = (c1&0x03)<<6 | c2<<1 | c3>>4
	dst[2] = (c3&0x0F)<<4 | c4>>1
	dst[3] = (c4&0x01)<<7 | c5<<2 | c6>>3
	dst[4] = (c6&0x07)<<5 | c7
	return nil
}

// decodeQuintetTail decodes a ragged tail of symCount valid symbols
// (2, 4, 5, or 7; no padding characters among them) into its bytes,
// rejecting non-zero unused tail bits per spec.
func decodeQuintetTail(dec *[256]byte, src []byte, symCount int) ([]byte, error) {
	c := make([]byte, symCount)
	acc := byte(0)
	for i := 0; i < symCount; i++ {
		c[i] = dec[src[i]]
		acc |= c[i]
	}
	if acc == invalid {
		return nil, ErrInvalidChar
	}

	out := make([]byte, quintetTailBytes(symCount))
	switch symCount {
	case 2:
		if c[1]&0x03 != 0 {
			return nil, ErrInvalidChar
		}
		out[0] = c[0]<<3 | c[1]>>2
	case 4:
		if c[3]&0x0F != 0 {
			return nil, ErrInvalidChar
		}
		out[0] = c[0]<<3 | c[1]>>2
		out[1] = (c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4
	case 5:
		if c[4]&0x01 != 0 {
			return nil, ErrInvalidChar
		}
		out[0] = c[0]<<3 | c[1]>>2
		out[1] = (c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4
		out[2] = (c[3]&0x0F)<<4 | c[4]>>1
	case 7:
		if c[6]&0x07 != 0 {
			return nil, ErrInvalidChar
		}
		out[0] = c[0]<<3 | c[1]>>2
		out[1] = (c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4
		out[2] = (c[3]&0x0F)<<4 | c[4]>>1
		out[3] = (c[4]&0x01)<<7 | c[5]<<2 | c[6]>>3
	}
	return out, nil
}

// QuintetDecode decodes src, accepting either a raw unpadded ragged
// tail (length%8 in {0,2,4,5,7}) or a canonically padded final group of
// 8 symbols whose trailing '=' count is in {0,1,3,4,6}.
func QuintetDecode(a *Alphabet, src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	dec := &a.Decode

	// Detect a padded final group: n is a multiple of 8 and the last
	// group contains a trailing run of '='.
	if n%8 == 0 {
		last := src[n-8:]
		padCount := 0
		for padCount < 8 && last[7-padCount] == '=' {
			padCount++
		}
		if padCount > 0 {
			switch padCount {
			case 1, 3, 4, 6:
			default:
				return nil, ErrInvalidPadding
			}
			symCount := 8 - padCount
			bodyGroups := n/8 - 1

			out := make([]byte, bodyGroups*5+quintetTailBytes(symCount))
			oi := 0
			for g := 0; g < bodyGroups; g++ {
				if err := decodeQuintetGroup(dec, src[g*8:g*8+8], out[oi:oi+5]); err != nil {
					return nil, err
				}
				oi += 5
			}
			tail, err := decodeQuintetTail(dec, last[:symCount], symCount)
			if err != nil {
				return nil, err
			}
			copy(out[oi:], tail)
			return out, nil
		}
	}

	rem := n % 8
	if !validRaggedQuintetCount(rem) {
		return nil, ErrInvalidLength
	}

	full := n / 8
	out := make([]byte, full*5+quintetTailBytes(rem))
	oi := 0
	for g := 0; g < full; g++ {
		if err := decodeQuintetGroup(dec, src[g*8:g*8+8], out[oi:oi+5]); err != nil {
			return nil, err
		}
		oi += 5
	}
	if rem > 0 {
		tail, err := decodeQuintetTail(dec, src[full*8:], rem)
		if err != nil {
			return nil, err
		}
		copy(out[oi:], tail)
	}
	return out, nil
}
