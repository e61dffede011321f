package protocol

import "errors"

var ErrFrameTooLarge = errors.New("frame payload too large")

// FrameWriter wraps payloads into frames with a rolling sequence number.
type FrameWriter struct {
	seq uint8
}

// Encode appends one frame to output. The payload callback writes the
// frame body; bodies that overflow MessageLengthMax are discarded and
// ErrFrameTooLarge is returned.
func (w *FrameWriter) Encode(output OutputBuffer, payload func(output OutputBuffer)) error {
	cursor := output.CurPosition()

	output.Output([]byte{0, MessageDest | w.seq})
	payload(output)

	length := len(output.DataSince(cursor)) + MessageTrailerSize
	if length > MessageLengthMax {
		output.Truncate(cursor)
		return ErrFrameTooLarge
	}
	output.Update(cursor+MessagePositionLen, uint8(length))

	crc := CRC16(output.DataSince(cursor))
	output.Output([]byte{
		uint8(crc >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})

	w.seq = (w.seq + 1) & MessageSeqMask
	return nil
}

// FrameHandler receives the sequence number and body of a valid frame.
// body aliases the input buffer and is only valid during the call.
type FrameHandler func(seq uint8, body []byte)

// FrameReader splits a byte stream into frames. After a bad header or
// CRC it slides forward one byte at a time, so frames following stray
// text or line noise are still found.
type FrameReader struct {
	handler FrameHandler
	unsync  bool
	nextSeq uint8
	started bool

	// Discarded counts runs of bytes skipped while resynchronising.
	Discarded uint32
	// Lost counts frames missing from the sequence.
	Lost uint32
}

// NewFrameReader creates a reader that calls handler for every frame.
func NewFrameReader(handler FrameHandler) *FrameReader {
	return &FrameReader{handler: handler}
}

// Receive consumes as many complete frames as input holds. A partial
// frame at the end stays in input for the next call.
func (r *FrameReader) Receive(input InputBuffer) {
	data := input.Data()

	for len(data) > 0 {
		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}
		if len(data) < MessageLengthMin {
			break
		}

		msgLen := int(data[MessagePositionLen])
		seq := data[MessagePositionSeq]
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax ||
			seq&^MessageSeqMask != MessageDest {
			data = r.skip(data)
			continue
		}
		if len(data) < msgLen {
			break
		}
		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			data = r.skip(data)
			continue
		}
		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
			data = r.skip(data)
			continue
		}

		body := data[MessageHeaderSize : msgLen-MessageTrailerSize]
		data = data[msgLen:]
		r.unsync = false

		seq &= MessageSeqMask
		if r.started && seq != r.nextSeq {
			r.Lost += uint32((seq - r.nextSeq) & MessageSeqMask)
		}
		r.started = true
		r.nextSeq = (seq + 1) & MessageSeqMask

		if r.handler != nil {
			r.handler(seq, body)
		}
	}

	consumed := input.Available() - len(data)
	if consumed > 0 {
		input.Pop(consumed)
	}
}

// skip drops one byte and counts the start of each bad run once.
func (r *FrameReader) skip(data []byte) []byte {
	if !r.unsync {
		r.unsync = true
		r.Discarded++
	}
	return data[1:]
}
