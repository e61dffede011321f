package core

import "testing"

func newTestController(t *testing.T, dma *fakeDMA) (*fakeGPIO, *fakeSerializer, Stalled) {
	t.Helper()
	g := newFakeGPIO()
	ser := &fakeSerializer{}

	ctrl, err := NewLedController(ser, g, testEnablePin)
	if err != nil {
		t.Fatalf("NewLedController failed: %v", err)
	}
	if !g.levels[testEnablePin] {
		t.Errorf("Enable line should start high (strip off)")
	}

	stalled, err := ctrl.Start(dma)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if g.levels[testEnablePin] {
		t.Errorf("Enable line should be low after Start")
	}
	if !ser.enabled {
		t.Errorf("Serializer not enabled by Start")
	}
	return g, ser, stalled
}

func TestTransferCompletesOnce(t *testing.T) {
	dma := &fakeDMA{busyPolls: 3}
	_, _, stalled := newTestController(t, dma)

	buf := NewFrameBuffer(68)
	buf.Fill(RGB(1, 2, 3))
	store := buf.s

	running := stalled.StartPattern(buf)
	if dma.started != 1 || len(dma.last) != 68 || dma.last[0] != RGB(1, 2, 3).Word() {
		t.Fatalf("DMA not started with the frame: started=%d len=%d", dma.started, len(dma.last))
	}

	blocked := 0
	for {
		res := running.Poll()
		if r, busy := res.ShouldBlock(); busy {
			blocked++
			running = r
			continue
		}
		st, back, done := res.Finished()
		if !done {
			t.Fatalf("Poll result neither blocking nor finished")
		}
		if back.s != store || back.Len() != 68 {
			t.Errorf("Returned buffer is not the original storage")
		}
		if back.At(67) != RGB(1, 2, 3) {
			t.Errorf("Frame contents changed during transfer")
		}
		stalled = st
		break
	}
	if blocked != 3 {
		t.Errorf("Expected 3 blocking polls, got %d", blocked)
	}

	expectPanic(t, "Poll after completion", func() { running.Poll() })
	expectPanic(t, "buffer used during transfer", func() { buf.Fill(Off) })
}

func TestTransferWaitsForFIFO(t *testing.T) {
	dma := &fakeDMA{}
	_, ser, stalled := newTestController(t, dma)

	running := stalled.StartPattern(NewFrameBuffer(4))
	ser.pending = 2

	for i := 0; i < 5; i++ {
		res := running.Poll()
		if _, busy := res.ShouldBlock(); !busy {
			t.Fatalf("Finished while FIFO still had words")
		}
	}
	ser.pending = 0
	if _, _, done := running.Poll().Finished(); !done {
		t.Errorf("Expected Finished once FIFO drained")
	}
}

func TestTransferStaleTokens(t *testing.T) {
	dma := &fakeDMA{}
	_, _, stalled := newTestController(t, dma)

	running := stalled.StartPattern(NewFrameBuffer(2))
	expectPanic(t, "StartPattern on consumed Stalled", func() {
		stalled.StartPattern(NewFrameBuffer(2))
	})

	st, buf, _ := running.Poll().Finished()
	running2 := st.StartPattern(buf)
	expectPanic(t, "Poll on consumed Running", func() { running.Poll() })
	_ = running2
}

func TestTransferCancel(t *testing.T) {
	dma := &fakeDMA{}
	g, ser, stalled := newTestController(t, dma)

	ctrl, ch, err := stalled.Cancel()
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if ch != DMAChannel(dma) {
		t.Errorf("Cancel did not return the DMA channel")
	}
	if !g.levels[testEnablePin] || ser.enabled {
		t.Errorf("Cancel should stop the serializer and power the strip off")
	}

	again, err := ctrl.Start(dma)
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	again.StartPattern(NewFrameBuffer(1))
	if dma.started != 1 {
		t.Errorf("Restarted controller did not start DMA")
	}
}

func TestTransferAbort(t *testing.T) {
	dma := &fakeDMA{busyPolls: 100}
	_, _, stalled := newTestController(t, dma)

	running := stalled.StartPattern(NewFrameBuffer(8))
	if _, _, done := running.Poll().Finished(); done {
		t.Fatalf("Transfer should still be busy")
	}

	st, buf := running.Abort()
	if dma.aborted != 1 {
		t.Errorf("Abort did not reach the DMA channel")
	}
	buf.Fill(White)
	st.StartPattern(buf)
}
