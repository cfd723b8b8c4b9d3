package clientpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// LobbyBack returns the client to the lobby select screen.
type LobbyBack struct {
	protocol.D
}

func parseLobbyBack(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tback")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyBack{D: d}, nil
}

// Write serializes the packet.
func (p *LobbyBack) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tback")
	return w.End()
}

// LobbySelect switches to another lobby without visiting the select screen.
type LobbySelect struct {
	protocol.D
	Lobby protocol.LobbyType
}

func parseLobbySelect(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tselect")
	if err != nil {
		return nil, err
	}
	lobby, err := r.TabLobbyType()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySelect{D: d, Lobby: lobby}, nil
}

// Write serializes the packet.
func (p *LobbySelect) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tselect")
	w.Field(p.Lobby.String())
	return w.End()
}

// LobbyTrackSetlist requests the track set list of the single lobby.
type LobbyTrackSetlist struct {
	protocol.D
}

func parseLobbyTrackSetlist(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\ttracksetlist")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyTrackSetlist{D: d}, nil
}

// Write serializes the packet.
func (p *LobbyTrackSetlist) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\ttracksetlist")
	return w.End()
}

// LobbyCspt starts a single player round from inside the single lobby.
type LobbyCspt struct {
	protocol.D
	NumTracks  int
	TrackType  protocol.TrackType
	WaterEvent protocol.WaterEvent
}

func parseLobbyCspt(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcspt")
	if err != nil {
		return nil, err
	}
	p := &LobbyCspt{D: d}
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
func (p *LobbyCspt) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcspt")
	w.Int(p.NumTracks)
	w.Field(p.TrackType.String())
	w.Field(p.WaterEvent.String())
	return w.End()
}

// LobbyCmpt creates a custom multiplayer game. Name and password use "-"
// for unset.
// Wire: "d <num> lobby\tcmpt\t<name>\t<password>\t<permission>\t<max>
// \t<tracks>\t<type>\t<strokes>\t<time>\t<water>\t<collision>\t<scoring>
// \t<weighting>".
type LobbyCmpt struct {
	protocol.D
	GameName   string
	Password   string
	Permission int
	MaxPlayers int
	NumTracks  int
	TrackType  protocol.TrackType
	MaxStrokes int
	TimeLimit  int
	WaterEvent protocol.WaterEvent
	Collision  protocol.Collision
	Scoring    protocol.Scoring
	WeightEnd  protocol.WeightEnd
}

func parseLobbyCmpt(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcmpt")
	if err != nil {
		return nil, err
	}
	p := &LobbyCmpt{D: d}
	if p.GameName, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Password, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Permission, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.MaxPlayers, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.NumTracks, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.TrackType, err = r.TabTrackType(); err != nil {
		return nil, err
	}
	if p.MaxStrokes, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.TimeLimit, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.WaterEvent, err = r.TabWaterEvent(); err != nil {
		return nil, err
	}
	if p.Collision, err = r.TabCollision(); err != nil {
		return nil, err
	}
	if p.Scoring, err = r.TabScoring(); err != nil {
		return nil, err
	}
	if p.WeightEnd, err = r.TabWeightEnd(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyCmpt) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcmpt")
	w.Field(p.GameName)
	w.Field(p.Password)
	w.Int(p.Permission)
	w.Int(p.MaxPlayers)
	w.Int(p.NumTracks)
	w.Field(p.TrackType.String())
	w.Int(p.MaxStrokes)
	w.Int(p.TimeLimit)
	w.Field(p.WaterEvent.String())
	w.Field(p.Collision.String())
	w.Field(p.Scoring.String())
	w.Field(p.WeightEnd.String())
	return w.End()
}

// LobbySay is lobby chat. The first field names the lobby tab the client
// typed into.
type LobbySay struct {
	protocol.D
	LobbyTab string
	Message  string
}

func parseLobbySay(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tsay")
	if err != nil {
		return nil, err
	}
	tab, err := r.TabField()
	if err != nil {
		return nil, err
	}
	msg, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySay{D: d, LobbyTab: tab, Message: msg}, nil
}

// Write serializes the packet.
func (p *LobbySay) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tsay")
	w.Field(p.LobbyTab)
	w.Field(p.Message)
	return w.End()
}

// LobbyNc toggles whether the player accepts duo challenges.
type LobbyNc struct {
	protocol.D
	NoChallenges bool
}

func parseLobbyNc(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tnc")
	if err != nil {
		return nil, err
	}
	v, err := r.TabBool()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyNc{D: d, NoChallenges: v}, nil
}

// Write serializes the packet.
func (p *LobbyNc) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tnc")
	w.Bool(p.NoChallenges)
	return w.End()
}

// LobbyCFail tells the server why the client rejected a challenge.
type LobbyCFail struct {
	protocol.D
	Name   string
	Reason protocol.ChallengeFail
}

func parseLobbyCFail(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcfail")
	if err != nil {
		return nil, err
	}
	name, err := r.TabField()
	if err != nil {
		return nil, err
	}
	reason, err := r.TabChallengeFail()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyCFail{D: d, Name: name, Reason: reason}, nil
}

// Write serializes the packet.
func (p *LobbyCFail) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcfail")
	w.Field(p.Name)
	w.Field(p.Reason.String())
	return w.End()
}

// LobbySayP is private chat addressed to one lobby member.
type LobbySayP struct {
	protocol.D
	Destination string
	Message     string
}

func parseLobbySayP(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tsayp")
	if err != nil {
		return nil, err
	}
	dest, err := r.TabField()
	if err != nil {
		return nil, err
	}
	msg, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySayP{D: d, Destination: dest, Message: msg}, nil
}

// Write serializes the packet.
func (p *LobbySayP) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tsayp")
	w.Field(p.Destination)
	w.Field(p.Message)
	return w.End()
}

// LobbyJmpt joins the multiplayer game with the given network id.
type LobbyJmpt struct {
	protocol.D
	NetworkID int
}

func parseLobbyJmpt(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tjmpt")
	if err != nil {
		return nil, err
	}
	id, err := r.TabUint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyJmpt{D: d, NetworkID: id}, nil
}

// Write serializes the packet.
func (p *LobbyJmpt) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tjmpt")
	w.Int(p.NetworkID)
	return w.End()
}

// LobbyCspc spectates the game with the given network id.
type LobbyCspc struct {
	protocol.D
	NetworkID int
}

func parseLobbyCspc(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcspc")
	if err != nil {
		return nil, err
	}
	id, err := r.TabUint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyCspc{D: d, NetworkID: id}, nil
}

// Write serializes the packet.
func (p *LobbyCspc) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcspc")
	w.Int(p.NetworkID)
	return w.End()
}

// LobbyCancel withdraws an outstanding challenge against the named player.
type LobbyCancel struct {
	protocol.D
	Challenged string
}

func parseLobbyCancel(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcancel")
	if err != nil {
		return nil, err
	}
	name, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyCancel{D: d, Challenged: name}, nil
}

// Write serializes the packet.
func (p *LobbyCancel) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcancel")
	w.Field(p.Challenged)
	return w.End()
}

// LobbyAccept accepts the named player's challenge.
type LobbyAccept struct {
	protocol.D
	Challenger string
}

func parseLobbyAccept(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\taccept")
	if err != nil {
		return nil, err
	}
	name, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyAccept{D: d, Challenger: name}, nil
}

// Write serializes the packet.
func (p *LobbyAccept) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\taccept")
	w.Field(p.Challenger)
	return w.End()
}

// LobbyChallenge challenges another duo lobby member with the proposed
// game settings.
type LobbyChallenge struct {
	protocol.D
	Challenged string
	NumTracks  int
	TrackType  protocol.TrackType
	MaxStrokes int
	TimeLimit  int
	WaterEvent protocol.WaterEvent
	Collision  protocol.Collision
	Scoring    protocol.Scoring
	WeightEnd  protocol.WeightEnd
}

func parseLobbyChallenge(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tchallenge")
	if err != nil {
		return nil, err
	}
	p := &LobbyChallenge{D: d}
	if p.Challenged, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.NumTracks, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.TrackType, err = r.TabTrackType(); err != nil {
		return nil, err
	}
	if p.MaxStrokes, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.TimeLimit, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.WaterEvent, err = r.TabWaterEvent(); err != nil {
		return nil, err
	}
	if p.Collision, err = r.TabCollision(); err != nil {
		return nil, err
	}
	if p.Scoring, err = r.TabScoring(); err != nil {
		return nil, err
	}
	if p.WeightEnd, err = r.TabWeightEnd(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyChallenge) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tchallenge")
	w.Field(p.Challenged)
	w.Int(p.NumTracks)
	w.Field(p.TrackType.String())
	w.Int(p.MaxStrokes)
	w.Int(p.TimeLimit)
	w.Field(p.WaterEvent.String())
	w.Field(p.Collision.String())
	w.Field(p.Scoring.String())
	w.Field(p.WeightEnd.String())
	return w.End()
}

// LobbyQuit leaves the server from the lobby.
type LobbyQuit struct {
	protocol.D
}

func parseLobbyQuit(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tquit")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyQuit{D: d}, nil
}

// Write serializes the packet.
func (p *LobbyQuit) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tquit")
	return w.End()
}
