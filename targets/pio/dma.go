//go:build rp2040

package pio

import (
	"device/rp"
	"runtime/volatile"
	"unsafe"

	"daudboard/core"
)

const (
	dmaChannels  = 12
	dreqPIO0TX0  = 0x0
	dmaSize32    = 2
	abortRetries = 10000
)

// dmaChannelHW is one channel's register block, see rp.DMA_Type.
type dmaChannelHW struct {
	READ_ADDR   volatile.Register32
	WRITE_ADDR  volatile.Register32
	TRANS_COUNT volatile.Register32
	CTRL_TRIG   volatile.Register32
	_           [12]volatile.Register32 // aliases
}

var dmaClaimed uint16

// DMAChannel feeds a WS2812 TX FIFO. It implements core.DMAChannel.
// Transfers are started and polled; nothing here waits on the hardware.
type DMAChannel struct {
	hw   *dmaChannelHW
	idx  uint8
	dst  uint32
	dreq uint32
}

// ClaimDMA reserves a free DMA channel paced by the serializer's FIFO.
func ClaimDMA(s *WS2812) (*DMAChannel, error) {
	regs := (*[dmaChannels]dmaChannelHW)(unsafe.Pointer(rp.DMA))
	for i := uint8(0); i < dmaChannels; i++ {
		if dmaClaimed&(1<<i) != 0 {
			continue
		}
		dmaClaimed |= 1 << i
		return &DMAChannel{
			hw:   &regs[i],
			idx:  i,
			dst:  s.txAddr(),
			dreq: s.txDREQ(),
		}, nil
	}
	return nil, core.ErrDMAUnavailable
}

// Start copies words to the FIFO, one 32-bit word per DREQ.
func (ch *DMAChannel) Start(words []uint32) {
	if len(words) == 0 {
		return
	}
	hw := ch.hw
	hw.CTRL_TRIG.ClearBits(rp.DMA_CH0_CTRL_TRIG_EN_Msk)
	hw.READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&words[0]))))
	hw.WRITE_ADDR.Set(ch.dst)
	hw.TRANS_COUNT.Set(uint32(len(words)))

	ctrl := ch.dreq<<rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Pos |
		uint32(ch.idx)<<rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Pos |
		dmaSize32<<rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Pos |
		1<<rp.DMA_CH0_CTRL_TRIG_INCR_READ_Pos |
		rp.DMA_CH0_CTRL_TRIG_EN_Msk
	hw.CTRL_TRIG.Set(ctrl)
}

// Busy reports whether a transfer is in flight.
func (ch *DMAChannel) Busy() bool {
	return ch.hw.CTRL_TRIG.Get()&rp.DMA_CH0_CTRL_TRIG_BUSY != 0
}

// Abort stops the channel and waits for in-flight writes to flush.
func (ch *DMAChannel) Abort() {
	mask := uint32(1) << ch.idx
	rp.DMA.CHAN_ABORT.Set(mask)
	for i := 0; i < abortRetries && rp.DMA.CHAN_ABORT.Get()&mask != 0; i++ {
	}
	ch.hw.CTRL_TRIG.ClearBits(rp.DMA_CH0_CTRL_TRIG_EN_Msk)
}

// Release returns the channel to the pool.
func (ch *DMAChannel) Release() {
	dmaClaimed &^= 1 << ch.idx
}
