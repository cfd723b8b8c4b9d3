package gameserver

import (
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// worker owns the two pumps of an authenticated connection. The reader
// feeds parsed packets to the tick loop through a bounded channel, the
// writer drains the client's outbox. Neither touches game state.
type worker struct {
	conn  net.Conn
	codec *Codec
	out   *world.Outbox
	in    chan protocol.Packet

	readTimeout  time.Duration
	writeTimeout time.Duration

	// next expected client packet number, advanced before comparing
	expect uint32
	remote string
}

func newWorker(conn net.Conn, codec *Codec, out *world.Outbox, queue int, timeouts [2]time.Duration, lastNum uint32) *worker {
	return &worker{
		conn:         conn,
		codec:        codec,
		out:          out,
		in:           make(chan protocol.Packet, queue),
		readTimeout:  timeouts[0],
		writeTimeout: timeouts[1],
		expect:       lastNum,
		remote:       conn.RemoteAddr().String(),
	}
}

// readPump reads, deciphers and parses until the peer goes away. Closing
// the outbox is the one disconnect signal everything else watches.
func (w *worker) readPump() {
	defer w.out.Close()

	buf := make([]byte, constants.ReadChunkSize)
	for {
		if err := w.conn.SetReadDeadline(time.Now().Add(w.readTimeout)); err != nil {
			return
		}
		n, err := w.conn.Read(buf)
		if err != nil {
			if err != io.EOF {
				slog.Debug("read ended", "remote", w.remote, "error", err)
			}
			return
		}
		if n == 0 {
			return
		}
		if err := w.codec.Accept(buf[:n]); err != nil {
			slog.Warn("undecipherable line", "remote", w.remote, "error", err)
			return
		}

		for {
			pkt, err := w.codec.Next()
			if err != nil {
				slog.Warn("unparseable packet", "remote", w.remote, "error", err)
				return
			}
			if pkt == nil {
				break
			}
			w.checkNumber(pkt)
			select {
			case w.in <- pkt:
			case <-w.out.Done():
				return
			}
		}
	}
}

// checkNumber verifies the client's packet count keeps step with ours.
// Skew is logged and tolerated, the original client never recovers from
// a desync anyway.
func (w *worker) checkNumber(pkt protocol.Packet) {
	num, ok := pkt.(protocol.Numbered)
	if !ok {
		return
	}
	w.expect++
	if got := uint32(num.PacketNum()); got != w.expect {
		slog.Warn("packet number skew", "remote", w.remote, "got", got, "want", w.expect)
		w.expect = got
	}
}

// writePump serializes the outbox to the wire. It owns the connection:
// when the outbox closes or a write fails, the conn is closed, which also
// unwinds the reader.
func (w *worker) writePump() {
	defer w.conn.Close()

	for {
		pkt, ok := w.out.Next()
		if !ok {
			return
		}
		if err := w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout)); err != nil {
			return
		}
		if _, err := w.conn.Write(w.codec.Encode(pkt)); err != nil {
			slog.Debug("write failed", "remote", w.remote, "error", err)
			w.out.Close()
			return
		}
	}
}
