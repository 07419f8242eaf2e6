package editor

import "io"

// readKey blocks until one key press is decoded. Empty reads are poll
// timeouts: they are retried while waiting for the first byte, and end an
// escape sequence early, turning it into a bare Esc.
func readKey(r io.Reader) (Key, error) {
	var c [1]byte
	for {
		ok, err := readByte(r, c[:])
		if err != nil {
			return 0, err
		}
		if ok {
			break
		}
	}
	if Key(c[0]) != keyEscape {
		return Key(c[0]), nil
	}

	var seq [3]byte
	for i := 0; i < 2; i++ {
		ok, err := readByte(r, seq[i:i+1])
		if err != nil {
			return 0, err
		}
		if !ok {
			return keyEscape, nil
		}
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			ok, err := readByte(r, seq[2:3])
			if err != nil {
				return 0, err
			}
			if !ok || seq[2] != '~' {
				return keyEscape, nil
			}
			switch seq[1] {
			case '1', '7':
				return HomeKey, nil
			case '3':
				return DeleteKey, nil
			case '4', '8':
				return EndKey, nil
			case '5':
				return PageUp, nil
			case '6':
				return PageDown, nil
			}
			return keyEscape, nil
		}
		switch seq[1] {
		case 'A':
			return ArrowUp, nil
		case 'B':
			return ArrowDown, nil
		case 'C':
			return ArrowRight, nil
		case 'D':
			return ArrowLeft, nil
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	}
	return keyEscape, nil
}

// readByte makes a single read attempt into b, which must hold one byte.
// It reports false if the poll timeout elapsed with nothing to read.
func readByte(r io.Reader, b []byte) (bool, error) {
	n, err := r.Read(b)
	if n == 1 {
		return true, nil
	}
	if err != nil {
		return false, fatal("read", err)
	}
	return false, nil
}
