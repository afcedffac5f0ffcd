package per

// EncodeLength encodes an aligned PER length determinant (X.691 11.9).
// Only the single-octet (n < 128) and two-octet (128 <= n < FRAGMENT_SIZE)
// forms are supported; the two-octet form has just 14 value bits (a
// 0x80-tagged high byte masked to 6 bits plus a full low byte), so it
// tops out at FRAGMENT_SIZE-1, not MAX_CONSTRAINED_LENGTH. Anything at
// or above FRAGMENT_SIZE, like the fragmented form itself (top two
// bits "11", X.691 11.9.3.8), returns ErrNotImplemented, matching this
// codec's deliberate choice not to reassemble fragment chains.
func EncodeLength(n int) (Encoding, error) {
	switch {
	case n < 0:
		return Encoding{}, wrapf(ErrOutOfRange, "negative length %d", n)
	case n < 128:
		return EncodingFromBytes([]byte{byte(n)}), nil
	case n < FRAGMENT_SIZE:
		b0 := byte(0x80 | ((n >> 8) & 0x3F))
		b1 := byte(n & 0xFF)
		return EncodingFromBytes([]byte{b0, b1}), nil
	default:
		return Encoding{}, wrapf(ErrNotImplemented, "length %d requires fragmentation", n)
	}
}

// DecodeLength reads a length determinant. A leading "11" pattern
// signals a fragment count, which this codec refuses to reassemble.
func DecodeLength(d *Decoder) (int, error) {
	b, err := d.ReadU8()
	if err != nil {
		return 0, err
	}
	if b&0xC0 == 0xC0 {
		return 0, wrapf(ErrNotImplemented, "fragmented length determinant (lead octet 0x%02x)", b)
	}
	if b&0x80 != 0 {
		b2, err := d.ReadU8()
		if err != nil {
			return 0, err
		}
		return (int(b&0x3F) << 8) | int(b2), nil
	}
	return int(b & 0x7F), nil
}

// EncodeNormallySmallLength encodes a "normally small" length (X.691
// 11.9.3.4), used for the count of extension additions in an
// extension bitmap (19.6) and similar small counters that are usually
// tiny but have no hard upper bound. Values 1..64 cost a single zero
// bit plus 6 value bits; anything larger falls back to a full length
// determinant behind a one bit.
func EncodeNormallySmallLength(n int) (Encoding, error) {
	if n < 1 {
		return Encoding{}, wrapf(ErrOutOfRange, "normally-small length must be >= 1, got %d", n)
	}
	if n <= 64 {
		return bitsEncoding(uint64(n-1), 7), nil
	}
	e := bitsEncoding(1, 1)
	rest, err := EncodeLength(n)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(rest); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeNormallySmallLength is the counterpart of EncodeNormallySmallLength.
func DecodeNormallySmallLength(d *Decoder) (int, error) {
	bit, err := d.Read(1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		v, err := d.Read(6)
		if err != nil {
			return 0, err
		}
		return int(v) + 1, nil
	}
	return DecodeLength(d)
}
