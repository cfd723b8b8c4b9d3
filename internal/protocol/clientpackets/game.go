package clientpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// GameRate rates a played track from the end screen.
type GameRate struct {
	protocol.D
	Track  int
	Rating int
}

func parseGameRate(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\trate")
	if err != nil {
		return nil, err
	}
	p := &GameRate{D: d}
	if p.Track, err = r.TabUint8(); err != nil {
		return nil, err
	}
	if p.Rating, err = r.TabUint8(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameRate) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\trate")
	w.Int(p.Track)
	w.Int(p.Rating)
	return w.End()
}

// GameStartTurn acknowledges that the named turn may start.
type GameStartTurn struct {
	protocol.D
	ID int
}

func parseGameStartTurn(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tstartturn")
	if err != nil {
		return nil, err
	}
	id, err := r.TabInt()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameStartTurn{D: d, ID: id}, nil
}

// Write serializes the packet.
func (p *GameStartTurn) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tstartturn")
	w.Int(p.ID)
	return w.End()
}

// GameBeginStroke announces the player's stroke. Coords is an opaque blob
// the server relays to the other players.
type GameBeginStroke struct {
	protocol.D
	Coords string
}

func parseGameBeginStroke(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tbeginstroke")
	if err != nil {
		return nil, err
	}
	coords, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameBeginStroke{D: d, Coords: coords}, nil
}

// Write serializes the packet.
func (p *GameBeginStroke) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tbeginstroke")
	w.Field(p.Coords)
	return w.End()
}

// GameEndStroke reports the stroke result. InHole is one flag character
// per player.
type GameEndStroke struct {
	protocol.D
	Index  int
	InHole string
}

func parseGameEndStroke(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tendstroke")
	if err != nil {
		return nil, err
	}
	p := &GameEndStroke{D: d}
	if p.Index, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.InHole, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameEndStroke) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tendstroke")
	w.Int(p.Index)
	w.Field(p.InHole)
	return w.End()
}

// GameSkip skips the current track in a single player round.
type GameSkip struct {
	protocol.D
}

func parseGameSkip(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tskip")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameSkip{D: d}, nil
}

// Write serializes the packet.
func (p *GameSkip) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tskip")
	return w.End()
}

// GameNewGame votes for another round with the same settings.
type GameNewGame struct {
	protocol.D
}

func parseGameNewGame(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tnewgame")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameNewGame{D: d}, nil
}

// Write serializes the packet.
func (p *GameNewGame) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tnewgame")
	return w.End()
}

// GameBackToPrivate returns a finished quick game to its private lobby.
type GameBackToPrivate struct {
	protocol.D
	Value int
}

func parseGameBackToPrivate(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tbacktoprivate")
	if err != nil {
		return nil, err
	}
	v, err := r.TabInt()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameBackToPrivate{D: d, Value: v}, nil
}

// Write serializes the packet.
func (p *GameBackToPrivate) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tbacktoprivate")
	w.Int(p.Value)
	return w.End()
}

// GameRejectAccept answers a track vote.
type GameRejectAccept struct {
	protocol.D
	Track int
	Value bool
}

func parseGameRejectAccept(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\trejectaccept")
	if err != nil {
		return nil, err
	}
	p := &GameRejectAccept{D: d}
	if p.Track, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.Value, err = r.TabBool(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameRejectAccept) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\trejectaccept")
	w.Int(p.Track)
	w.Bool(p.Value)
	return w.End()
}

// GameVoteSkip votes to skip the current track.
type GameVoteSkip struct {
	protocol.D
}

func parseGameVoteSkip(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tvoteskip")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameVoteSkip{D: d}, nil
}

// Write serializes the packet.
func (p *GameVoteSkip) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tvoteskip")
	return w.End()
}

// GameJoin enters a game room by id, carrying the joiner's name.
type GameJoin struct {
	protocol.D
	ID       int
	Username string
}

func parseGameJoin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tjoin")
	if err != nil {
		return nil, err
	}
	p := &GameJoin{D: d}
	if p.ID, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.Username, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameJoin) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tjoin")
	w.Int(p.ID)
	w.Field(p.Username)
	return w.End()
}

// GameSay is game room chat.
type GameSay struct {
	protocol.D
	Message string
}

func parseGameSay(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tsay")
	if err != nil {
		return nil, err
	}
	msg, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameSay{D: d, Message: msg}, nil
}

// Write serializes the packet.
func (p *GameSay) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tsay")
	w.Field(p.Message)
	return w.End()
}

// GameBack leaves the game room for the lobby.
type GameBack struct {
	protocol.D
}

func parseGameBack(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tback")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameBack{D: d}, nil
}

// Write serializes the packet.
func (p *GameBack) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tback")
	return w.End()
}
