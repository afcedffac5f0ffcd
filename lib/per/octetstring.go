package per

// EncodeOctetString encodes an OCTET STRING (X.691 17). Constraints.Size
// must be set. A fixed-length string is written with no length prefix;
// a variable-length one carries a length determinant. Long strings
// that would require fragmentation (X.691 17.8) are rejected.
func EncodeOctetString(value []byte, c Constraints) (Encoding, error) {
	if c.Size == nil {
		return Encoding{}, ErrMissingSizeConstraint
	}
	n := len(value)
	if c.Size.Lower != nil && c.Size.Upper != nil && *c.Size.Lower == *c.Size.Upper {
		if int64(n) != *c.Size.Upper {
			return Encoding{}, wrapf(ErrOutOfRange, "octet string length %d does not match fixed size %d", n, *c.Size.Upper)
		}
		return EncodingFromBytes(value), nil
	}
	if n >= FRAGMENT_SIZE {
		return Encoding{}, wrapf(ErrNotImplemented, "octet string of %d octets requires fragmentation", n)
	}
	e, err := EncodeLength(n)
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(EncodingFromBytes(value)); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeOctetString is the counterpart of EncodeOctetString.
func DecodeOctetString(d *Decoder, c Constraints) ([]byte, error) {
	if c.Size == nil {
		return nil, ErrMissingSizeConstraint
	}
	var n int
	if c.Size.Lower != nil && c.Size.Upper != nil && *c.Size.Lower == *c.Size.Upper {
		n = int(*c.Size.Upper)
	} else {
		ln, err := DecodeLength(d)
		if err != nil {
			return nil, err
		}
		n = ln
	}
	if n >= FRAGMENT_SIZE {
		return nil, wrapf(ErrNotImplemented, "octet string of %d octets requires fragmentation", n)
	}
	return d.ReadBytes(n)
}
