package testutil

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
)

// GolfClient drives one plaintext client connection from a test: it
// speaks the client side of the wire grammar and decodes what the server
// answers. Deadlines keep a broken server from hanging the suite.
type GolfClient struct {
	t    testing.TB
	conn net.Conn
	r    *bufio.Reader
	sent uint32
}

// DialGolf connects a scripted client to a running server.
func DialGolf(t testing.TB, addr string) *GolfClient {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return NewGolfClient(t, conn)
}

// NewGolfClient wraps an already connected conn, for pipe-based tests.
func NewGolfClient(t testing.TB, conn net.Conn) *GolfClient {
	t.Helper()
	return &GolfClient{t: t, conn: conn, r: bufio.NewReader(conn)}
}

// Close drops the connection, simulating a vanished client.
func (g *GolfClient) Close() {
	_ = g.conn.Close()
}

// Send writes one packet line.
func (g *GolfClient) Send(p protocol.Packet) {
	g.t.Helper()

	_ = g.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := g.conn.Write([]byte(p.Write())); err != nil {
		g.t.Fatalf("send %T: %v", p, err)
	}
}

// NextNum returns the next client-side packet number, matching the count
// Login leaves behind.
func (g *GolfClient) NextNum() protocol.D {
	g.sent++
	return protocol.D(g.sent)
}

// ReadLine returns the next raw wire line including its newline.
func (g *GolfClient) ReadLine() string {
	g.t.Helper()

	_ = g.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	line, err := g.r.ReadString('\n')
	if err != nil {
		g.t.Fatalf("read line: %v", err)
	}
	return line
}

// ReadPacket decodes the next server line.
func (g *GolfClient) ReadPacket() protocol.Packet {
	g.t.Helper()

	line := g.ReadLine()
	pkt, rest, err := serverpackets.Parse(line)
	if err != nil {
		g.t.Fatalf("parse server line %q: %v", line, err)
	}
	if rest != "" {
		g.t.Fatalf("server line %q has unparsed tail %q", line, rest)
	}
	return pkt
}

// TryReadPacket attempts to decode one server line within the wait,
// reporting false when none arrives.
func (g *GolfClient) TryReadPacket(wait time.Duration) (protocol.Packet, bool) {
	g.t.Helper()

	_ = g.conn.SetReadDeadline(time.Now().Add(wait))
	line, err := g.r.ReadString('\n')
	if err != nil {
		return nil, false
	}
	pkt, _, err := serverpackets.Parse(line)
	if err != nil {
		return nil, false
	}
	return pkt, true
}

// Expect reads packets until one of type T arrives, failing after limit
// other packets. Broadcast timing between ticks is not deterministic, so
// tests state what they wait for rather than exact sequences.
func Expect[T protocol.Packet](g *GolfClient, limit int) T {
	g.t.Helper()

	for i := 0; i <= limit; i++ {
		if pkt, ok := g.ReadPacket().(T); ok {
			return pkt
		}
	}
	var zero T
	g.t.Fatalf("no %T within %d packets", zero, limit)
	return zero
}

// Login walks the whole client side of the login conversation. An empty
// username logs in as a guest. Returns the network id the server issued.
func (g *GolfClient) Login(username string) int {
	g.t.Helper()

	for i := 0; i < 4; i++ {
		g.ReadLine() // h 1, c io, c crt, c ctr
	}
	g.Send(&clientpackets.New{})

	id := Expect[*serverpackets.Id](g, 0)

	g.Send(&clientpackets.Version{D: 0, Version: 35})
	Expect[*serverpackets.VersOk](g, 0)

	g.Send(&clientpackets.TLog{ID: "-", Text: "-"})
	g.Send(&clientpackets.Language{D: g.NextNum(), Language: "fi_FI"})
	g.Send(&clientpackets.LoginType{D: g.NextNum(), Type: protocol.LoginTtm})
	Expect[*serverpackets.StatusLogin](g, 0)

	g.Send(&clientpackets.TTLogin{D: g.NextNum(), Username: username})
	Expect[*serverpackets.BasicInfo](g, 0)
	Expect[*serverpackets.StatusLobbySelect](g, 0)

	return id.Value
}
