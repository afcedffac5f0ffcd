package per

// EncodeChoiceHeader writes the selector for a CHOICE type (X.691 23):
// an optional extension-marker bit, then the selector as a constrained
// whole number over the root alternative count (or, for an extension
// addition, a normally-small number). Callers follow this with the
// encoding of whichever alternative the selector names.
func EncodeChoiceHeader(selector int, rootCount int, extensible bool) (Encoding, error) {
	var e Encoding
	if extensible {
		inExt := selector >= rootCount
		bit := uint64(0)
		if inExt {
			bit = 1
		}
		e = bitsEncoding(bit, 1)
		if inExt {
			rest, err := EncodeNormallySmallLength(selector - rootCount + 1)
			if err != nil {
				return Encoding{}, err
			}
			if err := e.Append(rest); err != nil {
				return Encoding{}, err
			}
			return e, nil
		}
	}
	rest, err := EncodeConstrainedWholeNumber(0, int64(rootCount-1), int64(selector))
	if err != nil {
		return Encoding{}, err
	}
	if err := e.Append(rest); err != nil {
		return Encoding{}, err
	}
	return e, nil
}

// DecodeChoiceHeader reads the selector written by EncodeChoiceHeader.
// A selector outside [0, rootCount) when extensible is false, or any
// successfully-decoded selector the caller's switch does not
// recognize, should be reported as ErrInvalidChoice by the caller.
func DecodeChoiceHeader(d *Decoder, rootCount int, extensible bool) (int, error) {
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
			return rootCount + n - 1, nil
		}
	}
	v, err := DecodeConstrainedWholeNumber(d, 0, int64(rootCount-1))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
