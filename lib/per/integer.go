package per

import "math/bits"

// minimalUnsignedWidth returns the fewest bytes needed to hold v as an
// unsigned big-endian integer, per X.691 11.9.3.6 ("the minimum number
// of octets needed to encode n directly as a non-negative-binary-integer").
func minimalUnsignedWidth(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

// minimalSignedWidth returns the fewest bytes needed to hold v as a
// two's-complement big-endian integer (X.691 11.8, "the minimum number
// of octets needed").
func minimalSignedWidth(v int64) int {
	for n := 1; n <= 8; n++ {
		shift := uint(8*n - 1)
		hi := int64(1)<<shift - 1
		lo := -(int64(1) << shift)
		if v >= lo && v <= hi {
			return n
		}
	}
	return 8
}

func putUintBE(v uint64, width int) []byte {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return buf
}

func getUintBE(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func getIntBE(b []byte) int64 {
	v := getUintBE(b)
	bitlen := uint(len(b) * 8)
	if bitlen < 64 {
		sign := uint64(1) << (bitlen - 1)
		if v&sign != 0 {
			v |= ^uint64(0) << bitlen
		}
	}
	return int64(v)
}

// EncodeConstrainedWholeNumber encodes n, known to satisfy lb <= n <=
// ub, per X.691 11.5. The range's bit width decides the form: a bare
// bit field under 8 bits, one or two byte-aligned octets up to 16
// bits, or a length-determinant-prefixed octet run beyond that.
func EncodeConstrainedWholeNumber(lb, ub, n int64) (Encoding, error) {
	if n < lb || n > ub {
		return Encoding{}, wrapf(ErrOutOfRange, "%d not in [%d, %d]", n, lb, ub)
	}
	rangeSize := ub - lb + 1
	v := uint64(n - lb)
	if rangeSize == 1 {
		return Encoding{}, nil
	}
	width := bits.Len64(uint64(rangeSize - 1))
	switch {
	case width < 8:
		return bitsEncoding(v, width), nil
	case width <= 16:
		octets := 1
		if width > 8 {
			octets = 2
		}
		return EncodingFromBytes(putUintBE(v, octets)), nil
	default:
		k := (width + 7) / 8
		if k > 8 {
			return Encoding{}, wrapf(ErrNotImplemented, "constrained integer range needs %d octets", k)
		}
		e, err := EncodeLength(k)
		if err != nil {
			return Encoding{}, err
		}
		if err := e.Append(EncodingFromBytes(putUintBE(v, k))); err != nil {
			return Encoding{}, err
		}
		return e, nil
	}
}

// DecodeConstrainedWholeNumber is the counterpart of EncodeConstrainedWholeNumber.
func DecodeConstrainedWholeNumber(d *Decoder, lb, ub int64) (int64, error) {
	rangeSize := ub - lb + 1
	if rangeSize == 1 {
		return lb, nil
	}
	width := bits.Len64(uint64(rangeSize - 1))
	switch {
	case width < 8:
		v, err := d.Read(uint(width))
		if err != nil {
			return 0, err
		}
		return lb + int64(v), nil
	case width <= 16:
		octets := 1
		if width > 8 {
			octets = 2
		}
		raw, err := d.ReadBytes(octets)
		if err != nil {
			return 0, err
		}
		return lb + int64(getUintBE(raw)), nil
	default:
		k := (width + 7) / 8
		if k > 8 {
			return 0, wrapf(ErrNotImplemented, "constrained integer range needs %d octets", k)
		}
		ln, err := DecodeLength(d)
		if err != nil {
			return 0, err
		}
		if ln != k {
			return 0, wrapf(ErrOutOfRange, "length determinant %d does not match expected %d octets", ln, k)
		}
		raw, err := d.ReadBytes(k)
		if err != nil {
			return 0, err
		}
		val := lb + int64(getUintBE(raw))
		if val < lb || val > ub {
			return 0, wrapf(ErrOutOfRange, "%d not in [%d, %d]", val, lb, ub)
		}
		return val, nil
	}
}

// EncodeSemiConstrainedWholeNumber encodes n >= lb with no upper bound
// (X.691 11.7): a length determinant followed by the minimal unsigned
// big-endian encoding of n - lb.
func EncodeSemiConstrainedWholeNumber(lb, n int64) (Encoding, error) {
	if n < lb {
		return Encoding{}, wrapf(ErrOutOfRange, "%d below lower bound %d", n, lb)
	}
	v := uint64(n - lb)
	width := minimalUnsignedWidth(v)
	e, err := EncodeLength(width)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(EncodingFromBytes(putUintBE(v, width))); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeSemiConstrainedWholeNumber is the counterpart of EncodeSemiConstrainedWholeNumber.
func DecodeSemiConstrainedWholeNumber(d *Decoder, lb int64) (int64, error) {
	width, err := DecodeLength(d)
	if err != nil {
		return 0, err
	}
	if width > 8 {
		return 0, wrapf(ErrNotImplemented, "semi-constrained integer spans %d octets", width)
	}
	raw, err := d.ReadBytes(width)
	if err != nil {
		return 0, err
	}
	return lb + int64(getUintBE(raw)), nil
}

// EncodeUnconstrainedWholeNumber encodes n with no bounds at all
// (X.691 11.8): a length determinant followed by the minimal
// two's-complement big-endian encoding of n.
func EncodeUnconstrainedWholeNumber(n int64) (Encoding, error) {
	width := minimalSignedWidth(n)
	e, err := EncodeLength(width)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(EncodingFromBytes(putUintBE(uint64(n), width))); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeUnconstrainedWholeNumber is the counterpart of EncodeUnconstrainedWholeNumber.
func DecodeUnconstrainedWholeNumber(d *Decoder) (int64, error) {
	width, err := DecodeLength(d)
	if err != nil {
		return 0, err
	}
	if width > 8 {
		return 0, wrapf(ErrNotImplemented, "unconstrained integer spans %d octets", width)
	}
	raw, err := d.ReadBytes(width)
	if err != nil {
		return 0, err
	}
	return getIntBE(raw), nil
}

// EncodeInteger dispatches n to the constrained, semi-constrained or
// unconstrained form depending on which of lb/ub are present, per the
// Constraint.Value a caller attaches to an integer field (X.691 13).
func EncodeInteger(n int64, lb, ub *int64) (Encoding, error) {
	switch {
	case lb != nil && ub != nil:
		return EncodeConstrainedWholeNumber(*lb, *ub, n)
	case lb != nil:
		return EncodeSemiConstrainedWholeNumber(*lb, n)
	default:
		return EncodeUnconstrainedWholeNumber(n)
	}
}

// DecodeInteger is the counterpart of EncodeInteger.
func DecodeInteger(d *Decoder, lb, ub *int64) (int64, error) {
	switch {
	case lb != nil && ub != nil:
		return DecodeConstrainedWholeNumber(d, *lb, *ub)
	case lb != nil:
		return DecodeSemiConstrainedWholeNumber(d, *lb)
	default:
		return DecodeUnconstrainedWholeNumber(d)
	}
}

// EncodeEnumerated encodes value as an index into an enumeration with
// count root entries (X.691 14). When extensible is true, a leading
// extension-marker bit is emitted; a value >= count is treated as an
// extension addition and coded as a normally-small number instead of
// a constrained whole number over the (unknown) full extended range.
func EncodeEnumerated(value uint64, count uint64, extensible bool) (Encoding, error) {
	var e Encoding
	if extensible {
		inExt := value >= count
		bit := uint64(0)
		if inExt {
			bit = 1
		}
		e = bitsEncoding(bit, 1)
		if inExt {
			rest, err := EncodeNormallySmallLength(int(value-count) + 1)
			if err != nil {
				return Encoding{}, err
			}
			if err := e.Append(rest); err != nil {
				return Encoding{}, err
			}
			return e, nil
		}
	}
	lb, ub := int64(0), int64(count-1)
	rest, err := EncodeConstrainedWholeNumber(lb, ub, int64(value))
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(rest); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeEnumerated is the counterpart of EncodeEnumerated.
func DecodeEnumerated(d *Decoder, count uint64, extensible bool) (uint64, error) {
	if extensible {
		bit, err := d.Read(1)
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			n, err := DecodeNormallySmallLength(d)
			if err != nil {
				return 0, err
			}
			return count + uint64(n) - 1, nil
		}
	}
	v, err := DecodeConstrainedWholeNumber(d, 0, int64(count-1))
	if err != nil {
		return 0, err
	}
	return uint64(v), nil
}
