package serverpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// LobbyTrackSetlist carries the track set summaries shown in the single
// player lobby. The field tab is always written, so an empty setlist
// still ends "setlist\t\n".
type LobbyTrackSetlist struct {
	protocol.D
	Setlist []Tracklist
}

func parseLobbyTrackSetlist(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\ttracksetlist")
	if err != nil {
		return nil, err
	}
	p := &LobbyTrackSetlist{D: d}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	r.SkipTab()
	if !r.TakeNewline() {
		if p.Setlist, err = parseTracklists(r); err != nil {
			return nil, err
		}
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyTrackSetlist) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\ttracksetlist")
	w.Tab()
	for i := range p.Setlist {
		if i > 0 {
			w.Tab()
		}
		p.Setlist[i].write(w)
	}
	return w.End()
}

// LobbyNumberOfUsers refreshes the lobby and playing counts shown in the
// lobby header.
type LobbyNumberOfUsers struct {
	protocol.D
	SingleLobby   int
	SinglePlaying int
	DualLobby     int
	DualPlaying   int
	MultiLobby    int
	MultiPlaying  int
}

func parseLobbyNumberOfUsers(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tnumberofusers")
	if err != nil {
		return nil, err
	}
	p := &LobbyNumberOfUsers{D: d}
	if p.SingleLobby, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.SinglePlaying, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.DualLobby, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.DualPlaying, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.MultiLobby, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.MultiPlaying, err = r.TabInt(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyNumberOfUsers) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tnumberofusers")
	w.Int(p.SingleLobby)
	w.Int(p.SinglePlaying)
	w.Int(p.DualLobby)
	w.Int(p.DualPlaying)
	w.Int(p.MultiLobby)
	w.Int(p.MultiPlaying)
	return w.End()
}

// LobbyOwnJoin confirms the client's own lobby entry with its user record.
type LobbyOwnJoin struct {
	protocol.D
	OwnInfo protocol.User
}

func parseLobbyOwnJoin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\townjoin")
	if err != nil {
		return nil, err
	}
	u, err := r.TabUser()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyOwnJoin{D: d, OwnInfo: u}, nil
}

// Write serializes the packet.
func (p *LobbyOwnJoin) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\townjoin")
	w.Field(p.OwnInfo.String())
	return w.End()
}

// LobbyJoinFromGame announces a user returning to the lobby from a game
// room.
type LobbyJoinFromGame struct {
	protocol.D
	User protocol.User
}

func parseLobbyJoinFromGame(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tjoinfromgame")
	if err != nil {
		return nil, err
	}
	u, err := r.TabUser()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyJoinFromGame{D: d, User: u}, nil
}

// Write serializes the packet.
func (p *LobbyJoinFromGame) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tjoinfromgame")
	w.Field(p.User.String())
	return w.End()
}

// LobbyJoin announces a user entering the lobby.
type LobbyJoin struct {
	protocol.D
	User protocol.User
}

func parseLobbyJoin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tjoin")
	if err != nil {
		return nil, err
	}
	u, err := r.TabUser()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyJoin{D: d, User: u}, nil
}

// Write serializes the packet.
func (p *LobbyJoin) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tjoin")
	w.Field(p.User.String())
	return w.End()
}

// LobbyCFail rejects a challenge with a reason keyword.
type LobbyCFail struct {
	protocol.D
	Reason protocol.ChallengeFail
}

func parseLobbyCFail(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcfail")
	if err != nil {
		return nil, err
	}
	reason, err := r.TabChallengeFail()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyCFail{D: d, Reason: reason}, nil
}

// Write serializes the packet.
func (p *LobbyCFail) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcfail")
	w.Field(p.Reason.String())
	return w.End()
}

// LobbyAFail tells the accepting side that the challenge is gone.
type LobbyAFail struct {
	protocol.D
}

func parseLobbyAFail(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tafail")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyAFail{D: d}, nil
}

// Write serializes the packet.
func (p *LobbyAFail) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tafail")
	return w.End()
}

// LobbyCancel withdraws a challenge the client received.
type LobbyCancel struct {
	protocol.D
}

func parseLobbyCancel(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tcancel")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyCancel{D: d}, nil
}

// Write serializes the packet.
func (p *LobbyCancel) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tcancel")
	return w.End()
}

// LobbyChallenge delivers a duel offer with the proposed game settings.
type LobbyChallenge struct {
	protocol.D
	Challenger string
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
	if p.Challenger, err = r.TabField(); err != nil {
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
	w.Field(p.Challenger)
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

// LobbyNC broadcasts a user toggling challenge refusal.
type LobbyNC struct {
	protocol.D
	Name         string
	NoChallenges bool
}

func parseLobbyNC(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tnc")
	if err != nil {
		return nil, err
	}
	p := &LobbyNC{D: d}
	if p.Name, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.NoChallenges, err = r.TabBool(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyNC) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tnc")
	w.Field(p.Name)
	w.Bool(p.NoChallenges)
	return w.End()
}

// LobbySheriffSay delivers a moderator message to the lobby.
type LobbySheriffSay struct {
	protocol.D
	Message string
}

func parseLobbySheriffSay(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tsherifsay")
	if err != nil {
		return nil, err
	}
	msg, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbySheriffSay{D: d, Message: msg}, nil
}

// Write serializes the packet.
func (p *LobbySheriffSay) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tsherifsay")
	w.Field(p.Message)
	return w.End()
}

// LobbySay relays lobby chat with the lobby tab it belongs to.
type LobbySay struct {
	protocol.D
	Destination string
	Username    string
	Message     string
}

func parseLobbySay(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tsay")
	if err != nil {
		return nil, err
	}
	p := &LobbySay{D: d}
	if p.Destination, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Username, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Message, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbySay) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tsay")
	w.Field(p.Destination)
	w.Field(p.Username)
	w.Field(p.Message)
	return w.End()
}

// LobbySayP delivers a private message.
// Wire: "d 5 lobby\tsayp\tNokkasiili\tlol lol lol".
type LobbySayP struct {
	protocol.D
	From    string
	Message string
}

func parseLobbySayP(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tsayp")
	if err != nil {
		return nil, err
	}
	p := &LobbySayP{D: d}
	if p.From, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Message, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbySayP) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tsayp")
	w.Field(p.From)
	w.Field(p.Message)
	return w.End()
}

// LobbyGsn tells the lobby a duel is starting between two users.
type LobbyGsn struct {
	protocol.D
	Challenger string
	Challenged string
}

func parseLobbyGsn(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tgsn")
	if err != nil {
		return nil, err
	}
	p := &LobbyGsn{D: d}
	if p.Challenger, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Challenged, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyGsn) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tgsn")
	w.Field(p.Challenger)
	w.Field(p.Challenged)
	return w.End()
}

// LobbyUsers lists every user in the lobby. An empty lobby writes no
// list at all.
// Wire: "d 7 lobby\tusers\t3:~anonym-2893^wn^-1^de_DE^-^-\t3:Benny^r^10^de_DE^-^-".
type LobbyUsers struct {
	protocol.D
	Users []protocol.User
}

func parseLobbyUsers(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tusers")
	if err != nil {
		return nil, err
	}
	p := &LobbyUsers{D: d}
	r.SkipTab()
	if !r.AtEnd() {
		if p.Users, err = protocol.ParseUsers(r); err != nil {
			return nil, err
		}
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyUsers) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tusers")
	for _, u := range p.Users {
		w.Field(u.String())
	}
	return w.End()
}

// LobbyPart announces a user leaving the lobby and why.
// Wire: "d 17 lobby\tpart\tzocker666\t2\t#1583093".
type LobbyPart struct {
	protocol.D
	Name   string
	Reason protocol.JoinLeaveReason
}

func parseLobbyPart(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tpart")
	if err != nil {
		return nil, err
	}
	p := &LobbyPart{D: d}
	if p.Name, err = r.TabField(); err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	if p.Reason, err = protocol.ParseJoinLeaveReason(r); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyPart) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tpart")
	w.Field(p.Name)
	w.Field(p.Reason.String())
	return w.End()
}

// LobbyGamelistFull replaces the whole game list of the lobby. The field
// tab before the list is always written, so zero games still ends
// "full\t0\t\n".
type LobbyGamelistFull struct {
	protocol.D
	Len   int
	Games []Game
}

func parseLobbyGamelistFull(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tgamelist\tfull")
	if err != nil {
		return nil, err
	}
	p := &LobbyGamelistFull{D: d}
	if p.Len, err = r.TabUint(); err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	r.SkipTab()
	if !r.TakeNewline() {
		if p.Games, err = parseGames(r); err != nil {
			return nil, err
		}
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *LobbyGamelistFull) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tgamelist\tfull")
	w.Int(p.Len)
	w.Tab()
	for i := range p.Games {
		if i > 0 {
			w.Tab()
		}
		p.Games[i].write(w)
	}
	return w.End()
}

// LobbyGamelistRemove drops one game from the lobby's list.
type LobbyGamelistRemove struct {
	protocol.D
	ID int
}

func parseLobbyGamelistRemove(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tgamelist\tremove")
	if err != nil {
		return nil, err
	}
	id, err := r.TabUint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyGamelistRemove{D: d, ID: id}, nil
}

// Write serializes the packet.
func (p *LobbyGamelistRemove) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tgamelist\tremove")
	w.Int(p.ID)
	return w.End()
}

// LobbyGamelistChange updates one game already in the lobby's list.
type LobbyGamelistChange struct {
	protocol.D
	Game Game
}

func parseLobbyGamelistChange(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tgamelist\tchange")
	if err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	g, err := parseGame(r)
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyGamelistChange{D: d, Game: g}, nil
}

// Write serializes the packet.
func (p *LobbyGamelistChange) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tgamelist\tchange")
	w.Tab()
	p.Game.write(w)
	return w.End()
}

// LobbyGamelistAdd appends one game to the lobby's list.
type LobbyGamelistAdd struct {
	protocol.D
	Game Game
}

func parseLobbyGamelistAdd(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("lobby\tgamelist\tadd")
	if err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	g, err := parseGame(r)
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LobbyGamelistAdd{D: d, Game: g}, nil
}

// Write serializes the packet.
func (p *LobbyGamelistAdd) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("lobby\tgamelist\tadd")
	w.Tab()
	p.Game.write(w)
	return w.End()
}
