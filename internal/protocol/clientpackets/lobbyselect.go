package clientpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// LobbySelectRnop requests the per-lobby player counts shown on the lobby
// select screen.
type LobbySelectRnop struct {
	protocol.D
}

func parseLobbySelectRnop(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobbyselect\trnop")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySelectRnop{D: d}, nil
}

// Write serializes the packet.
func (p *LobbySelectRnop) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobbyselect\trnop")
	return w.End()
}

// LobbySelectCspt starts a single player game straight from the lobby
// select screen.
type LobbySelectCspt struct {
	protocol.D
	NumTracks  int
	TrackType  protocol.TrackType
	WaterEvent protocol.WaterEvent
}

func parseLobbySelectCspt(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobbyselect\tcspt")
	if err != nil {
		return nil, err
	}
	p := &LobbySelectCspt{D: d}
	if p.NumTracks, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.TrackType, err = r.TabTrackType(); err != nil {
		return nil, err
	}
	if p.WaterEvent, err = r.TabWaterEvent(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbySelectCspt) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobbyselect\tcspt")
	w.Int(p.NumTracks)
	w.Field(p.TrackType.String())
	w.Field(p.WaterEvent.String())
	return w.End()
}

// LobbySelectQmpt asks for a quick multiplayer game from the lobby select
// screen.
type LobbySelectQmpt struct {
	protocol.D
}

func parseLobbySelectQmpt(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobbyselect\tqmpt")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySelectQmpt{D: d}, nil
}

// Write serializes the packet.
func (p *LobbySelectQmpt) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobbyselect\tqmpt")
	return w.End()
}

// LobbySelectSelect enters one of the three lobbies.
type LobbySelectSelect struct {
	protocol.D
	Lobby protocol.LobbyType
}

func parseLobbySelectSelect(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobbyselect\tselect")
	if err != nil {
		return nil, err
	}
	lobby, err := r.TabLobbyType()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySelectSelect{D: d, Lobby: lobby}, nil
}

// Write serializes the packet.
func (p *LobbySelectSelect) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobbyselect\tselect")
	w.Field(p.Lobby.String())
	return w.End()
}
