package protocol

import "errors"

var (
	ErrInvalidVLQ = errors.New("invalid VLQ encoding")
	ErrShortFrame = errors.New("frame body ends inside a field")
)

// EncodeVLQUint writes v most significant group first, seven bits per
// byte, with the top bit set on every byte but the last. The groups are
// sign-aware, so values near 2^32 (wrapped clocks) stay short.
func EncodeVLQUint(output OutputBuffer, v uint32) {
	s := int32(v)
	if !(-(1<<26) <= s && s < (3<<26)) {
		output.Output([]byte{byte((s>>28)&0x7F) | 0x80})
	}
	if !(-(1<<19) <= s && s < (3<<19)) {
		output.Output([]byte{byte((s>>21)&0x7F) | 0x80})
	}
	if !(-(1<<12) <= s && s < (3<<12)) {
		output.Output([]byte{byte((s>>14)&0x7F) | 0x80})
	}
	if !(-(1<<5) <= s && s < (3<<5)) {
		output.Output([]byte{byte((s>>7)&0x7F) | 0x80})
	}
	output.Output([]byte{byte(s & 0x7F)})
}

// DecodeVLQUint reads one value and advances data past it.
func DecodeVLQUint(data *[]byte) (uint32, error) {
	if len(*data) == 0 {
		return 0, ErrShortFrame
	}
	c := uint32((*data)[0])
	*data = (*data)[1:]

	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	for c&0x80 != 0 {
		if len(*data) == 0 {
			return 0, ErrShortFrame
		}
		c = uint32((*data)[0])
		*data = (*data)[1:]
		v = v<<7 | c&0x7F
	}
	return v, nil
}

// EncodeVLQString writes a length-prefixed string.
func EncodeVLQString(output OutputBuffer, s string) {
	EncodeVLQUint(output, uint32(len(s)))
	output.Output([]byte(s))
}

// DecodeVLQString reads a length-prefixed string.
func DecodeVLQString(data *[]byte) (string, error) {
	n, err := DecodeVLQUint(data)
	if err != nil {
		return "", err
	}
	if uint32(len(*data)) < n {
		return "", ErrShortFrame
	}
	s := string((*data)[:n])
	*data = (*data)[n:]
	return s, nil
}
