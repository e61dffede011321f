package protocol

import (
	"bytes"
	"testing"
)

func TestScratchOutputPatching(t *testing.T) {
	out := NewScratchOutput()
	out.Output([]byte{0, MessageDest})
	start := out.CurPosition()
	out.Output([]byte{7, 8, 9})

	out.Update(MessagePositionLen, 5)
	if got := out.Result(); !bytes.Equal(got, []byte{5, MessageDest, 7, 8, 9}) {
		t.Errorf("Result after Update = %v", got)
	}
	if got := out.DataSince(start); !bytes.Equal(got, []byte{7, 8, 9}) {
		t.Errorf("DataSince(%d) = %v", start, got)
	}
	if out.DataSince(10) != nil {
		t.Error("DataSince past the end should be nil")
	}

	out.Truncate(start)
	if out.CurPosition() != start {
		t.Errorf("Truncate left position %d, expected %d", out.CurPosition(), start)
	}
	out.Truncate(start + 3)
	if out.CurPosition() != start {
		t.Error("Truncate beyond the end moved the position")
	}

	out.Reset()
	if len(out.Result()) != 0 {
		t.Error("Reset did not clear the output")
	}
}

func TestScratchOutputFull(t *testing.T) {
	out := NewScratchOutput()
	out.Output(make([]byte, MessageMax-1))
	out.Output([]byte{1, 2, 3})
	if out.CurPosition() != MessageMax {
		t.Errorf("Overflowing write should stop at %d, got %d", MessageMax, out.CurPosition())
	}
}

func TestFifoBufferCapacity(t *testing.T) {
	fifo := NewFifoBuffer(10)
	if fifo.Free() != 9 || fifo.Available() != 0 {
		t.Fatalf("New FIFO: free=%d available=%d", fifo.Free(), fifo.Available())
	}

	if n := fifo.Write(make([]byte, 12)); n != 9 {
		t.Errorf("Size-10 FIFO accepted %d bytes, expected 9", n)
	}
	if fifo.Free() != 0 {
		t.Errorf("Full FIFO reports %d free", fifo.Free())
	}

	fifo.Pop(20)
	if fifo.Available() != 0 || fifo.Free() != 9 {
		t.Errorf("Over-pop: available=%d free=%d", fifo.Available(), fifo.Free())
	}
}

func TestFifoBufferWrapped(t *testing.T) {
	fifo := NewFifoBuffer(8)
	fifo.Write([]byte{1, 2, 3, 4, 5, 6})
	fifo.Pop(5)
	fifo.Write([]byte{7, 8, 9, 10})

	if got := fifo.Data(); !bytes.Equal(got, []byte{6, 7, 8, 9, 10}) {
		t.Errorf("Data() on wrapped queue = %v", got)
	}

	// Head stops at the end of the backing array.
	head := fifo.Head()
	if !bytes.Equal(head, []byte{6, 7, 8}) {
		t.Errorf("First Head() = %v, expected [6 7 8]", head)
	}
	fifo.Pop(len(head))
	if head = fifo.Head(); !bytes.Equal(head, []byte{9, 10}) {
		t.Errorf("Second Head() = %v, expected [9 10]", head)
	}
	fifo.Pop(len(head))
	if len(fifo.Head()) != 0 {
		t.Error("Drained queue still has a head")
	}
}
