package protocol

import (
	"errors"
	"testing"
)

func TestMessageDecode(t *testing.T) {
	tests := []struct {
		name   string
		encode func(OutputBuffer)
		kind   uint32
		text   string
		values []uint32
	}{
		{"text", func(o OutputBuffer) { EncodeText(o, "[BOOT] ok") }, MsgText, "[BOOT] ok", nil},
		{"boot", func(o OutputBuffer) { EncodeBoot(o, 68) }, MsgBoot, Version, []uint32{68}},
		{"timing", func(o OutputBuffer) { EncodeValues(o, MsgTiming, 4, 123456, 68, 0) },
			MsgTiming, "", []uint32{4, 123456, 68, 0}},
		{"stats", func(o OutputBuffer) { EncodeValues(o, MsgStats, 20000, 266, 3, 243, 100) },
			MsgStats, "", []uint32{20000, 266, 3, 243, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewScratchOutput()
			tt.encode(out)
			msg, err := DecodeMessage(out.Result())
			if err != nil {
				t.Fatalf("DecodeMessage failed: %v", err)
			}
			if msg.Kind != tt.kind || msg.Text != tt.text {
				t.Errorf("Got kind=%d text=%q", msg.Kind, msg.Text)
			}
			if len(msg.Values) != len(tt.values) {
				t.Fatalf("Got values %v, expected %v", msg.Values, tt.values)
			}
			for i := range tt.values {
				if msg.Values[i] != tt.values[i] {
					t.Errorf("Value %d = %d, expected %d", i, msg.Values[i], tt.values[i])
				}
			}
		})
	}
}

func TestMessageDecodeErrors(t *testing.T) {
	out := NewScratchOutput()
	EncodeValues(out, 99)
	if _, err := DecodeMessage(out.Result()); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("Unknown kind: expected ErrUnknownMessage, got %v", err)
	}

	out.Reset()
	EncodeValues(out, MsgStats, 1, 2)
	if _, err := DecodeMessage(out.Result()); err == nil {
		t.Error("Short stats body decoded without error")
	}

	out.Reset()
	EncodeValues(out, MsgBoot, 0)
	EncodeVLQUint(out, 1)
	EncodeVLQUint(out, 2)
	if _, err := DecodeMessage(out.Result()); !errors.Is(err, ErrInvalidVLQ) {
		t.Errorf("Trailing bytes: expected ErrInvalidVLQ, got %v", err)
	}
}
