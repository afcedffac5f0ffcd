package per

import "math"

// Fixed-width integer adapters for the Go primitive integer types.
// Each one is a fully-constrained integer over the type's own range,
// so every encode/decode simply forwards to EncodeConstrainedWholeNumber
// / DecodeConstrainedWholeNumber with that range as bounds (X.691 13,
// "the type is a fixed-width integer of a particular size").

func EncodeInt8(value int8, _ Constraints) (Encoding, error) {
	return EncodeConstrainedWholeNumber(math.MinInt8, math.MaxInt8, int64(value))
}

func DecodeInt8(d *Decoder, _ Constraints) (int8, error) {
	v, err := DecodeConstrainedWholeNumber(d, math.MinInt8, math.MaxInt8)
	return int8(v), err
}

func EncodeUint8(value uint8, _ Constraints) (Encoding, error) {
	return EncodeConstrainedWholeNumber(0, math.MaxUint8, int64(value))
}

func DecodeUint8(d *Decoder, _ Constraints) (uint8, error) {
	v, err := DecodeConstrainedWholeNumber(d, 0, math.MaxUint8)
	return uint8(v), err
}

func EncodeInt16(value int16, _ Constraints) (Encoding, error) {
	return EncodeConstrainedWholeNumber(math.MinInt16, math.MaxInt16, int64(value))
}

func DecodeInt16(d *Decoder, _ Constraints) (int16, error) {
	v, err := DecodeConstrainedWholeNumber(d, math.MinInt16, math.MaxInt16)
	return int16(v), err
}

func EncodeUint16(value uint16, _ Constraints) (Encoding, error) {
	return EncodeConstrainedWholeNumber(0, math.MaxUint16, int64(value))
}

func DecodeUint16(d *Decoder, _ Constraints) (uint16, error) {
	v, err := DecodeConstrainedWholeNumber(d, 0, math.MaxUint16)
	return uint16(v), err
}

func EncodeInt32(value int32, _ Constraints) (Encoding, error) {
	return EncodeConstrainedWholeNumber(math.MinInt32, math.MaxInt32, int64(value))
}

func DecodeInt32(d *Decoder, _ Constraints) (int32, error) {
	v, err := DecodeConstrainedWholeNumber(d, math.MinInt32, math.MaxInt32)
	return int32(v), err
}

func EncodeUint32(value uint32, _ Constraints) (Encoding, error) {
	return EncodeConstrainedWholeNumber(0, math.MaxUint32, int64(value))
}

func DecodeUint32(d *Decoder, _ Constraints) (uint32, error) {
	v, err := DecodeConstrainedWholeNumber(d, 0, math.MaxUint32)
	return uint32(v), err
}

// int64's own range is exactly what EncodeUnconstrainedWholeNumber
// already encodes natively (a length determinant plus the minimal
// two's-complement big-endian form, up to 8 octets): math.MinInt64..
// math.MaxInt64 as a constrained range has a span of 2^64, which does
// not fit in the int64 rangeSize arithmetic EncodeConstrainedWholeNumber
// relies on, so int64 forwards to the unconstrained form instead of
// going through constrained bounds the way the smaller widths do.
func EncodeInt64(value int64, _ Constraints) (Encoding, error) {
	return EncodeUnconstrainedWholeNumber(value)
}

func DecodeInt64(d *Decoder, _ Constraints) (int64, error) {
	return DecodeUnconstrainedWholeNumber(d)
}

// uint64's upper bound, math.MaxUint64, does not fit in the int64
// bounds EncodeConstrainedWholeNumber/EncodeSemiConstrainedWholeNumber
// take, so uint64 gets its own minimal-width encoding directly in
// unsigned arithmetic (X.691 11.7's mechanism, a length determinant
// plus the minimal non-negative-binary-integer form) rather than
// reusing either helper through a narrowing cast.
func EncodeUint64(value uint64, _ Constraints) (Encoding, error) {
	width := minimalUnsignedWidth(value)
	e, err := EncodeLength(width)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(EncodingFromBytes(putUintBE(value, width))); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

func DecodeUint64(d *Decoder, _ Constraints) (uint64, error) {
	width, err := DecodeLength(d)
	if err != nil {
		return 0, err
	}
	if width > 8 {
		return 0, wrapf(ErrNotImplemented, "uint64 value spans %d octets", width)
	}
	raw, err := d.ReadBytes(width)
	if err != nil {
		return 0, err
	}
	return getUintBE(raw), nil
}
