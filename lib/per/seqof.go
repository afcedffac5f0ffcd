package per

// EncodeSequenceOf encodes a SEQUENCE OF (X.691 19). Constraints.Size
// bounds the element count. A fixed count omits the length
// determinant; a variable one carries it.
//
// Each element is encoded against Constraints{Size: c.Value}: the
// outer c.Value (a bound on each element's own value, e.g. "each
// integer is in [0, 100]") is handed to the element codec as ITS
// Size slot when the element type itself needs a size bound (for a
// SEQUENCE OF OCTET STRING, say, c.Value would carry the per-element
// octet-string size bound). This looks backwards, and it is — the
// outer constraint's Value/Size distinction doesn't survive the
// nesting cleanly, so the codec passes it through at the slot the
// inner element actually reads from rather than the slot its name
// suggests. An element codec that only needs a value bound of its
// own should ignore Constraints.Size here and read nothing from c.
func EncodeSequenceOf[T any](values []T, c Constraints, encodeElem Encode[T]) (Encoding, error) {
	if c.Size == nil {
		return Encoding{}, ErrMissingSizeConstraint
	}
	n := len(values)
	var e Encoding
	if c.Size.Lower == nil || c.Size.Upper == nil || *c.Size.Lower != *c.Size.Upper {
		ln, err := EncodeLength(n)
		if err != nil {
			return Encoding{}, err
		}
		e = ln
	}
	elemConstraints := Constraints{Size: c.Value}
	for _, v := range values {
		enc, err := encodeElem(v, elemConstraints)
		if err != nil {
			return Encoding{}, err
		}
		if err := e.Append(enc); err != nil {
			return Encoding{}, err
		}
	}
	return e, nil
}

// DecodeSequenceOf is the counterpart of EncodeSequenceOf.
func DecodeSequenceOf[T any](d *Decoder, c Constraints, decodeElem Decode[T]) ([]T, error) {
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
		return nil, wrapf(ErrNotImplemented, "sequence-of with %d elements requires fragmentation", n)
	}
	elemConstraints := Constraints{Size: c.Value}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := decodeElem(d, elemConstraints)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
