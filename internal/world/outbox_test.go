package world

import (
	"testing"

	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
)

func TestOutbox_OrderAcrossSpill(t *testing.T) {
	o := NewOutbox(4)
	for i := 0; i < 10; i++ {
		o.Push(&serverpackets.H{Value: i})
	}
	for want := 0; want < 10; want++ {
		p, ok := o.Next()
		if !ok {
			t.Fatalf("Next() closed early at %d", want)
		}
		h, isH := p.(*serverpackets.H)
		if !isH || h.Value != want {
			t.Fatalf("Next() = %v, want h %d", p, want)
		}
	}
	o.Close()
	if _, ok := o.Next(); ok {
		t.Error("Next() after drain and close should report closed")
	}
}

func TestOutbox_CloseFlushesQueued(t *testing.T) {
	o := NewOutbox(2)
	for i := 0; i < 5; i++ {
		o.Push(&serverpackets.H{Value: i})
	}
	o.Close()
	for want := 0; want < 5; want++ {
		p, ok := o.Next()
		if !ok {
			t.Fatalf("queued packet %d lost on close", want)
		}
		if h := p.(*serverpackets.H); h.Value != want {
			t.Fatalf("Next() = h %d, want h %d", h.Value, want)
		}
	}
	if _, ok := o.Next(); ok {
		t.Error("Next() should report closed once flushed")
	}
}

func TestOutbox_PushAfterCloseDropped(t *testing.T) {
	o := NewOutbox(2)
	o.Close()
	o.Push(&serverpackets.H{Value: 1})
	if _, ok := o.Next(); ok {
		t.Error("packet pushed after close should be dropped")
	}
	if !o.Closed() {
		t.Error("Closed() = false after Close")
	}
}
