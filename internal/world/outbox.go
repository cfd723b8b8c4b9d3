package world

import (
	"sync"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// Outbox is the per-client outbound queue between the tick loop and the
// connection's writer goroutine. Push never blocks: the buffered channel
// takes the normal load and a spill slice absorbs bursts, so a stalled
// socket cannot stall the tick.
//
// Push is called from one goroutine at a time (the handshake, then the tick
// loop); Next belongs to the writer goroutine.
type Outbox struct {
	ch      chan protocol.Packet
	closeCh chan struct{}
	once    sync.Once

	mu    sync.Mutex
	spill []protocol.Packet
}

// NewOutbox returns an outbox whose channel buffers size packets.
func NewOutbox(size int) *Outbox {
	if size <= 0 {
		size = 1
	}
	return &Outbox{
		ch:      make(chan protocol.Packet, size),
		closeCh: make(chan struct{}),
	}
}

// Push queues a packet for delivery. Packets pushed after Close are dropped.
func (o *Outbox) Push(p protocol.Packet) {
	select {
	case <-o.closeCh:
		return
	default:
	}

	o.mu.Lock()
	if len(o.spill) > 0 {
		// Keep order: once spilling starts, everything spills until the
		// writer catches up.
		o.spill = append(o.spill, p)
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	select {
	case o.ch <- p:
	default:
		o.mu.Lock()
		o.spill = append(o.spill, p)
		o.mu.Unlock()
	}
}

// Next blocks until a packet is available or the outbox is closed and
// drained. The channel is always drained before the spill so delivery order
// matches push order.
func (o *Outbox) Next() (protocol.Packet, bool) {
	for {
		select {
		case p := <-o.ch:
			return p, true
		default:
		}

		o.mu.Lock()
		if len(o.spill) > 0 {
			p := o.spill[0]
			o.spill = o.spill[1:]
			if len(o.spill) == 0 {
				o.spill = nil
			}
			o.mu.Unlock()
			return p, true
		}
		o.mu.Unlock()

		select {
		case p := <-o.ch:
			return p, true
		case <-o.closeCh:
			// Flush whatever was queued before the close.
			select {
			case p := <-o.ch:
				return p, true
			default:
			}
			o.mu.Lock()
			drained := len(o.spill) == 0
			o.mu.Unlock()
			if drained {
				return nil, false
			}
		}
	}
}

// Close marks the outbox dead. Queued packets remain readable through Next
// until drained. Safe to call more than once and from any goroutine.
func (o *Outbox) Close() {
	o.once.Do(func() { close(o.closeCh) })
}

// Closed reports whether Close has been called.
func (o *Outbox) Closed() bool {
	select {
	case <-o.closeCh:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the outbox is closed.
func (o *Outbox) Done() <-chan struct{} {
	return o.closeCh
}
