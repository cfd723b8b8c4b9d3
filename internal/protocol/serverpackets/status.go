package serverpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// VersOk accepts the client's version number.
type VersOk struct {
	protocol.D
}

func parseVersOk(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("versok")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &VersOk{D: d}, nil
}

// Write serializes the packet.
func (p *VersOk) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("versok")
	return w.End()
}

// Error rejects the client with a fatal reason.
type Error struct {
	protocol.D
	Error protocol.ErrorType
}

func parseError(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("error")
	if err != nil {
		return nil, err
	}
	e, err := r.TabErrorType()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Error{D: d, Error: e}, nil
}

// Write serializes the packet.
func (p *Error) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("error")
	w.Field(p.Error.String())
	return w.End()
}

// BasicInfo carries the account flags sent once after login.
// Wire: "d 2 basicinfo\tf\t0\tt\tt".
type BasicInfo struct {
	protocol.D
	UnconfirmedEmail bool
	AccessLevel      int
	BadwordFilter    bool
	GuestChat        bool
}

func parseBasicInfo(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("basicinfo")
	if err != nil {
		return nil, err
	}
	p := &BasicInfo{D: d}
	if p.UnconfirmedEmail, err = r.TabBool(); err != nil {
		return nil, err
	}
	if p.AccessLevel, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.BadwordFilter, err = r.TabBool(); err != nil {
		return nil, err
	}
	if p.GuestChat, err = r.TabBool(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *BasicInfo) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("basicinfo")
	w.Bool(p.UnconfirmedEmail)
	w.Int(p.AccessLevel)
	w.Bool(p.BadwordFilter)
	w.Bool(p.GuestChat)
	return w.End()
}

// Broadcast is a server-wide announcement line.
type Broadcast struct {
	protocol.D
	Message string
}

func parseBroadcast(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("broadcast")
	if err != nil {
		return nil, err
	}
	msg, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Broadcast{D: d, Message: msg}, nil
}

// Write serializes the packet.
func (p *Broadcast) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("broadcast")
	w.Field(p.Message)
	return w.End()
}

// StatusLogin answers a login attempt. A successful login writes no status
// field at all: "d 1 status\tlogin". Failures append the reason, for
// example "d 0 status\tlogin\tforbiddennick".
type StatusLogin struct {
	protocol.D
	Status protocol.LoginStatus
}

func parseStatusLogin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("status\tlogin")
	if err != nil {
		return nil, err
	}
	p := &StatusLogin{D: d}
	if r.SkipTab() && !r.AtEnd() {
		if p.Status, err = protocol.ParseLoginStatus(r.Field()); err != nil {
			return nil, err
		}
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *StatusLogin) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("status\tlogin")
	if p.Status != protocol.LoginOK {
		w.Field(p.Status.String())
	}
	return w.End()
}

// StatusGame moves the client's state to the game room.
type StatusGame struct {
	protocol.D
}

func parseStatusGame(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("status\tgame")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &StatusGame{D: d}, nil
}

// Write serializes the packet.
func (p *StatusGame) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("status\tgame")
	return w.End()
}

// StatusLobby moves the client's state to the named lobby.
type StatusLobby struct {
	protocol.D
	Lobby protocol.LobbyType
}

func parseStatusLobby(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("status\tlobby")
	if err != nil {
		return nil, err
	}
	lobby, err := r.TabLobbyType()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &StatusLobby{D: d, Lobby: lobby}, nil
}

// Write serializes the packet.
func (p *StatusLobby) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("status\tlobby")
	w.Field(p.Lobby.String())
	return w.End()
}

// StatusLobbySelect moves the client's state to the lobby select screen.
type StatusLobbySelect struct {
	protocol.D
	Lobby int
}

func parseStatusLobbySelect(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("status\tlobbyselect")
	if err != nil {
		return nil, err
	}
	v, err := r.TabInt()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &StatusLobbySelect{D: d, Lobby: v}, nil
}

// Write serializes the packet.
func (p *StatusLobbySelect) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("status\tlobbyselect")
	w.Int(p.Lobby)
	return w.End()
}
