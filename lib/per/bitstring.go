package per

import "encoding/asn1"

// BitStringBit reports whether bit i of s is set, using the same
// bucket/offset addressing as the codec's underlying byte layout:
// bytes are stored in reverse order of their bucket (last byte is
// bucket 0) and bits within a byte are numbered from the LSB. This
// looks backwards next to the usual "bit 0 is the first transmitted,
// MSB-first" ASN.1 convention, but it is the addressing that makes
// DecodeBitString's realignment of a non-byte-aligned trailing octet
// land on the right physical bits — verified against the fixed test
// vector in bitstring_test.go, not just asserted.
func BitStringBit(s asn1.BitString, i int) bool {
	bucket := i / 8
	pos := i - bucket*8
	if bucket >= len(s.Bytes) {
		return false
	}
	bucket = len(s.Bytes) - bucket - 1
	return s.Bytes[bucket]&(1<<uint(pos)) != 0
}

// SetBitStringBit sets or clears bit i of s in place, using the same
// addressing as BitStringBit.
func SetBitStringBit(s asn1.BitString, i int, v bool) {
	bucket := i / 8
	pos := i - bucket*8
	if bucket >= len(s.Bytes) {
		return
	}
	bucket = len(s.Bytes) - bucket - 1
	if v {
		s.Bytes[bucket] |= 1 << uint(pos)
	} else {
		s.Bytes[bucket] &^= 1 << uint(pos)
	}
}

// EncodeBitString encodes an ASN.1 BIT STRING (X.691 16). Constraints.Size
// must be set. A fixed-length string (Size.Lower == Size.Upper) under
// 16 bits is written as a bare bit field with no length prefix; one at
// or over 16 bits but still fixed is octet-aligned with no prefix
// either; a variable-length string carries a length determinant.
// Fragmentation of very long bit strings (X.691 16.11) is not
// supported.
func EncodeBitString(value asn1.BitString, c Constraints) (Encoding, error) {
	if c.Size == nil {
		return Encoding{}, ErrMissingSizeConstraint
	}
	n := value.BitLength
	if c.Size.Lower != nil && c.Size.Upper != nil && *c.Size.Lower == *c.Size.Upper {
		if n != int(*c.Size.Upper) {
			return Encoding{}, wrapf(ErrOutOfRange, "bit string length %d does not match fixed size %d", n, *c.Size.Upper)
		}
		if n == 0 {
			return Encoding{}, nil
		}
		return encodeBitStringPayload(value.Bytes, n)
	}
	if c.Size.Upper != nil && *c.Size.Upper >= FRAGMENT_SIZE {
		return Encoding{}, wrapf(ErrNotImplemented, "bit string of %d bits requires fragmentation", n)
	}
	e, err := EncodeLength(n)
	if err != nil {
		return Encoding{}, err
	}
	if n == 0 {
		return e, nil
	}
	payload, err := encodeBitStringPayload(value.Bytes, n)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(payload); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// encodeBitStringPayload writes the n-bit payload stored, per
// BitStringBit's convention, in value. That convention realigns a
// non-byte-aligned trailing octet on decode (see decodeBitStringPayload);
// encode must undo the same realignment before splitting the result
// back into whole octets plus a final right-aligned partial octet.
func encodeBitStringPayload(value []byte, n int) (Encoding, error) {
	full := n / 8
	rem := n % 8
	raw := append([]byte(nil), value...)
	if rem != 0 && len(raw) > 1 {
		shiftBytesRight(raw, 8-rem)
	}
	var e Encoding
	for i := 0; i < full; i++ {
		e.appendBits(raw[i], 8)
	}
	if rem > 0 {
		e.appendBits(raw[full], rem)
	}
	return e, nil
}

// DecodeBitString is the counterpart of EncodeBitString.
func DecodeBitString(d *Decoder, c Constraints) (asn1.BitString, error) {
	if c.Size == nil {
		return asn1.BitString{}, ErrMissingSizeConstraint
	}
	var n int
	if c.Size.Lower != nil && c.Size.Upper != nil && *c.Size.Lower == *c.Size.Upper {
		n = int(*c.Size.Upper)
	} else {
		ln, err := DecodeLength(d)
		if err != nil {
			return asn1.BitString{}, err
		}
		n = ln
	}
	if n == 0 {
		return asn1.BitString{Bytes: []byte{}, BitLength: 0}, nil
	}
	if n >= FRAGMENT_SIZE {
		return asn1.BitString{}, wrapf(ErrNotImplemented, "bit string of %d bits requires fragmentation", n)
	}
	content, err := decodeBitStringPayload(d, n)
	if err != nil {
		return asn1.BitString{}, err
	}
	return asn1.BitString{Bytes: content, BitLength: n}, nil
}

func decodeBitStringPayload(d *Decoder, n int) ([]byte, error) {
	var content []byte
	if err := d.ReadToVec(&content, uint(n)); err != nil {
		return nil, err
	}
	numBytes := len(content)
	rem := n % 8
	if rem != 0 && numBytes > 1 {
		shiftBytesLeft(content, 8-rem)
	}
	return content, nil
}
