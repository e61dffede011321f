// Package protocol implements the telemetry wire format shared by the
// firmware and the host console: VLQ-encoded messages inside
// length/sequence/CRC16 frames terminated by a sync byte.
package protocol

// Version is the telemetry format version reported in the boot banner.
const Version = "1"

// Frame layout constants.
const (
	MessageMax         = 256 // Output scratch size, several frames
	MessageHeaderSize  = 2   // length, sequence
	MessageTrailerSize = 3   // crc hi, crc lo, sync
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
	MessageSeqMask     = 0x0F
)

// Message kinds carried as the first VLQ of a frame payload.
const (
	MsgText   = 1 // string
	MsgTiming = 2 // event, clock, v1, v2
	MsgStats  = 3 // iterations, sweeps, reports, frames, effect steps
	MsgBoot   = 4 // version string, led count
)
