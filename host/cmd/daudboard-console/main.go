package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"daudboard/host/console"
	"daudboard/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyUSB0", "Serial device wired to the debug UART")
	baud   = flag.Int("baud", serial.DefaultBaud, "Baud rate")
	timing = flag.Bool("timing", false, "Print timing ring entries")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flush failed: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := console.New(os.Stdout)
	c.ShowTiming = *timing

	fmt.Printf("Listening on %s at %d baud (Ctrl-C to exit)\n", cfg.Device, cfg.Baud)
	err = c.Run(ctx, port)

	missing, discarded := c.Lost()
	fmt.Printf("\n%d frames, %d bad, %d missing, %d resyncs\n",
		c.Frames, c.BadFrames, missing, discarded)

	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
