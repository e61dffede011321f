// Package console decodes the keyboard's telemetry stream for display.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"daudboard/core"
	"daudboard/protocol"
)

const readChunk = 64

// Console turns framed telemetry into text lines.
type Console struct {
	out    io.Writer
	fifo   *protocol.FifoBuffer
	reader *protocol.FrameReader

	// ShowTiming prints timing ring entries; otherwise they are counted only.
	ShowTiming bool

	Frames    uint32
	BadFrames uint32
	Timing    uint32
}

// New creates a console writing lines to out.
func New(out io.Writer) *Console {
	c := &Console{
		out:  out,
		fifo: protocol.NewFifoBuffer(1024),
	}
	c.reader = protocol.NewFrameReader(c.handleFrame)
	return c
}

// Feed processes raw bytes from the serial line.
func (c *Console) Feed(data []byte) {
	for len(data) > 0 {
		n := c.fifo.Write(data)
		data = data[n:]
		c.reader.Receive(c.fifo)
		if n == 0 && len(data) > 0 {
			// No complete frame fits; drop the backlog and resync.
			c.fifo.Reset()
		}
	}
}

// Run reads port until ctx is cancelled or the port reports EOF.
func (c *Console) Run(ctx context.Context, port io.Reader) error {
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := port.Read(buf)
		if n > 0 {
			c.Feed(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read telemetry: %w", err)
		}
	}
}

// Lost returns frames missing from the sequence and resynchronisations.
func (c *Console) Lost() (missing, discarded uint32) {
	return c.reader.Lost, c.reader.Discarded
}

func (c *Console) handleFrame(seq uint8, body []byte) {
	c.Frames++
	msg, err := protocol.DecodeMessage(body)
	if err != nil {
		c.BadFrames++
		fmt.Fprintf(c.out, "bad frame seq=%d: %v\n", seq, err)
		return
	}
	if msg.Kind == protocol.MsgTiming {
		c.Timing++
		if !c.ShowTiming {
			return
		}
	}
	fmt.Fprintln(c.out, Format(msg))
}

// Format renders one message as a single line.
func Format(msg protocol.Message) string {
	v := msg.Values
	switch msg.Kind {
	case protocol.MsgText:
		return strings.TrimRight(msg.Text, "\r\n")
	case protocol.MsgBoot:
		return fmt.Sprintf("boot: telemetry v%s, %d leds", msg.Text, v[0])
	case protocol.MsgTiming:
		return fmt.Sprintf("timing: %-11s clock=%d v1=%d v2=%d",
			core.EventName(uint8(v[0])), v[1], v[2], v[3])
	case protocol.MsgStats:
		return fmt.Sprintf("stats: loops=%d sweeps=%d reports=%d frames=%d effects=%d",
			v[0], v[1], v[2], v[3], v[4])
	}
	return fmt.Sprintf("message kind %d", msg.Kind)
}
