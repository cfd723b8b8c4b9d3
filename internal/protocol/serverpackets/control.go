// Package serverpackets defines every line the golf server can send. The
// d packets get their sequence number when the packet is built, from the
// per-client counter, so construction order is send order.
package serverpackets

import (
	"fmt"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// H opens the handshake. Wire: "h 1".
type H struct {
	Value int
}

func parseH(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("h"); err != nil {
		return nil, err
	}
	if err := r.Space(); err != nil {
		return nil, err
	}
	v, err := r.Int()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &H{Value: v}, nil
}

// Write serializes the packet.
func (p *H) Write() string { return fmt.Sprintf("h %d\n", p.Value) }

// Version carries the server identity string.
type Version struct {
	Value string
}

func parseVersion(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("s"); err != nil {
		return nil, err
	}
	v, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Version{Value: v}, nil
}

// Write serializes the packet.
func (p *Version) Write() string {
	w := protocol.NewWriter()
	w.Tag("s")
	w.Field(p.Value)
	return w.End()
}

// KickBan removes the client, telling it how to present the removal.
type KickBan struct {
	Style protocol.KickStyle
}

func parseKickBan(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("p kickban"); err != nil {
		return nil, err
	}
	style, err := r.TabKickStyle()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &KickBan{Style: style}, nil
}

// Write serializes the packet.
func (p *KickBan) Write() string {
	w := protocol.NewWriter()
	w.Tag("p kickban")
	w.Field(p.Style.String())
	return w.End()
}

// Io announces the connection cipher seed. Until this line the connection
// is plaintext; every line after it is scrambled in both directions.
type Io struct {
	Seed int
}

func parseIo(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c io"); err != nil {
		return nil, err
	}
	if err := r.Space(); err != nil {
		return nil, err
	}
	seed, err := r.Int()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Io{Seed: seed}, nil
}

// Write serializes the packet.
func (p *Io) Write() string { return fmt.Sprintf("c io %d\n", p.Seed) }

// Crt carries the handshake constant the client echoes back.
type Crt struct {
	Value int
}

func parseCrt(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c crt"); err != nil {
		return nil, err
	}
	if err := r.Space(); err != nil {
		return nil, err
	}
	v, err := r.Int()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Crt{Value: v}, nil
}

// Write serializes the packet.
func (p *Crt) Write() string { return fmt.Sprintf("c crt %d\n", p.Value) }

// Ctr closes the handshake preamble.
type Ctr struct{}

func parseCtr(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c ctr"); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Ctr{}, nil
}

// Write serializes the packet.
func (p *Ctr) Write() string { return "c ctr\n" }

// Id assigns the connection id answered to "c new" or "c old".
type Id struct {
	Value int
}

func parseId(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c id"); err != nil {
		return nil, err
	}
	if err := r.Space(); err != nil {
		return nil, err
	}
	v, err := r.Uint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Id{Value: v}, nil
}

// Write serializes the packet.
func (p *Id) Write() string { return fmt.Sprintf("c id %d\n", p.Value) }

// Ping asks the client for a pong.
type Ping struct{}

func parsePing(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c ping"); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Ping{}, nil
}

// Write serializes the packet.
func (p *Ping) Write() string { return "c ping\n" }

// Rcok confirms a session resume.
type Rcok struct{}

func parseRcok(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c rcok"); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Rcok{}, nil
}

// Write serializes the packet.
func (p *Rcok) Write() string { return "c rcok\n" }

// Rcf rejects a session resume.
type Rcf struct{}

func parseRcf(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c rcf"); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Rcf{}, nil
}

// Write serializes the packet.
func (p *Rcf) Write() string { return "c rcf\n" }
