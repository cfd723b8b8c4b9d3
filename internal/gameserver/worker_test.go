package gameserver

import (
	"bufio"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/testutil"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

func startWorker(t *testing.T, readTimeout time.Duration) (*worker, *bufio.ReadWriter, *world.Outbox) {
	t.Helper()

	clientConn, serverConn := testutil.PipeConn(t)
	out := world.NewOutbox(4)
	codec := NewCodec(clientpackets.Parse, Ciphers{})
	w := newWorker(serverConn, codec, out, 8,
		[2]time.Duration{readTimeout, time.Second}, 3)

	go w.writePump()
	go w.readPump()

	rw := bufio.NewReadWriter(bufio.NewReader(clientConn), bufio.NewWriter(clientConn))
	t.Cleanup(func() { _ = clientConn.Close() })
	return w, rw, out
}

func TestWorker_OutboundDelivery(t *testing.T) {
	_, rw, out := startWorker(t, time.Second)

	out.Push(&serverpackets.Ping{})

	line, err := rw.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "c ping\n", line)
}

func TestWorker_InboundParsing(t *testing.T) {
	w, rw, _ := startWorker(t, time.Second)

	_, err := rw.WriteString("c pong\nd 4 lobby\tback\n")
	require.NoError(t, err)
	require.NoError(t, rw.Flush())

	select {
	case pkt := <-w.in:
		assert.IsType(t, &clientpackets.Pong{}, pkt)
	case <-time.After(time.Second):
		t.Fatal("no packet from reader")
	}
	select {
	case pkt := <-w.in:
		back, ok := pkt.(*clientpackets.LobbyBack)
		require.True(t, ok, "got %T", pkt)
		assert.Equal(t, uint32(4), uint32(back.PacketNum()))
	case <-time.After(time.Second):
		t.Fatal("no packet from reader")
	}
}

func TestWorker_ReadTimeoutDisconnects(t *testing.T) {
	_, _, out := startWorker(t, 50*time.Millisecond)

	select {
	case <-out.Done():
	case <-time.After(time.Second):
		t.Fatal("idle read did not close the connection")
	}
}

func TestWorker_PeerCloseUnwinds(t *testing.T) {
	clientConn, serverConn := testutil.PipeConn(t)
	out := world.NewOutbox(4)
	w := newWorker(serverConn, NewCodec(clientpackets.Parse, Ciphers{}), out, 8,
		[2]time.Duration{time.Second, time.Second}, 3)
	go w.writePump()
	go w.readPump()

	_ = clientConn.Close()

	select {
	case <-out.Done():
	case <-time.After(time.Second):
		t.Fatal("peer close did not unwind the pumps")
	}
}
