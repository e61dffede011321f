package protocol

import "errors"

var ErrUnknownMessage = errors.New("unknown message kind")

// Message is a decoded telemetry frame body.
type Message struct {
	Kind   uint32
	Text   string
	Values []uint32
}

// messageArity is the number of integer fields following the kind.
var messageArity = map[uint32]int{
	MsgText:   0,
	MsgTiming: 4,
	MsgStats:  5,
	MsgBoot:   1,
}

// EncodeText writes a text message body.
func EncodeText(output OutputBuffer, s string) {
	EncodeVLQUint(output, MsgText)
	EncodeVLQString(output, s)
}

// EncodeValues writes a body of kind followed by integer fields.
func EncodeValues(output OutputBuffer, kind uint32, values ...uint32) {
	EncodeVLQUint(output, kind)
	for _, v := range values {
		EncodeVLQUint(output, v)
	}
}

// EncodeBoot writes the boot banner body.
func EncodeBoot(output OutputBuffer, ledCount uint32) {
	EncodeVLQUint(output, MsgBoot)
	EncodeVLQString(output, Version)
	EncodeVLQUint(output, ledCount)
}

// DecodeMessage parses one frame body.
func DecodeMessage(body []byte) (Message, error) {
	kind, err := DecodeVLQUint(&body)
	if err != nil {
		return Message{}, err
	}
	n, ok := messageArity[kind]
	if !ok {
		return Message{}, ErrUnknownMessage
	}
	msg := Message{Kind: kind}
	if kind == MsgText || kind == MsgBoot {
		if msg.Text, err = DecodeVLQString(&body); err != nil {
			return Message{}, err
		}
	}
	for i := 0; i < n; i++ {
		v, err := DecodeVLQUint(&body)
		if err != nil {
			return Message{}, err
		}
		msg.Values = append(msg.Values, v)
	}
	if len(body) != 0 {
		return Message{}, ErrInvalidVLQ
	}
	return msg, nil
}
