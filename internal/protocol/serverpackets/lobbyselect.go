package serverpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// LobbySelectNop refreshes the player counts on the lobby select screen.
type LobbySelectNop struct {
	protocol.D
	Single int
	Versus int
	Multi  int
}

func parseLobbySelectNop(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobbyselect\tnop")
	if err != nil {
		return nil, err
	}
	p := &LobbySelectNop{D: d}
	if p.Single, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.Versus, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.Multi, err = r.TabInt(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbySelectNop) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobbyselect\tnop")
	w.Int(p.Single)
	w.Int(p.Versus)
	w.Int(p.Multi)
	return w.End()
}

// LobbySelectLobby answers a lobby query with its player count.
type LobbySelectLobby struct {
	protocol.D
	Value int
}

func parseLobbySelectLobby(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobbyselect\tlobby")
	if err != nil {
		return nil, err
	}
	v, err := r.TabInt()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySelectLobby{D: d, Value: v}, nil
}

// Write serializes the packet.
func (p *LobbySelectLobby) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobbyselect\tlobby")
	w.Int(p.Value)
	return w.End()
}
