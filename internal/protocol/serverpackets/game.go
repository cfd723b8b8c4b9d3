package serverpackets

import (
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// GameGameInfo describes the room the client just joined.
// Wire: "d 9 game\tgameinfo\t-\tf\t13\t3\t10\t1\t20\t60\t0\t1\t0\t0\tf".
type GameGameInfo struct {
	protocol.D
	Name       string
	Passworded bool
	Permission int
	Players    int
	NumTracks  int
	TrackType  protocol.TrackType
	MaxStrokes int
	StrokeTime int
	WaterEvent protocol.WaterEvent
	Collision  protocol.Collision
	Scoring    protocol.Scoring
	WeightEnd  protocol.WeightEnd
	Unused     bool
}

func parseGameGameInfo(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tgameinfo")
	if err != nil {
		return nil, err
	}
	p := &GameGameInfo{D: d}
	if p.Name, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Passworded, err = r.TabBool(); err != nil {
		return nil, err
	}
	if p.Permission, err = r.TabInt(); err != nil {
		return nil, err
	}
	if p.Players, err = r.TabUint(); err != nil {
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
	if p.StrokeTime, err = r.TabInt(); err != nil {
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
	if p.Unused, err = r.TabBool(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameGameInfo) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tgameinfo")
	w.Field(p.Name)
	w.Bool(p.Passworded)
	w.Int(p.Permission)
	w.Int(p.Players)
	w.Int(p.NumTracks)
	w.Field(p.TrackType.String())
	w.Int(p.MaxStrokes)
	w.Int(p.StrokeTime)
	w.Field(p.WaterEvent.String())
	w.Field(p.Collision.String())
	w.Field(p.Scoring.String())
	w.Field(p.WeightEnd.String())
	w.Bool(p.Unused)
	return w.End()
}

// GamePlayers lists the seats of a room. An empty room writes no list at
// all; clients treat the missing field as zero players.
type GamePlayers struct {
	protocol.D
	Players []Player
}

func parseGamePlayers(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tplayers")
	if err != nil {
		return nil, err
	}
	p := &GamePlayers{D: d}
	r.SkipTab()
	if !r.AtEnd() {
		if p.Players, err = parsePlayers(r); err != nil {
			return nil, err
		}
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GamePlayers) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tplayers")
	if len(p.Players) > 0 {
		w.Tab()
		for i := range p.Players {
			if i > 0 {
				w.Tab()
			}
			p.Players[i].write(w)
		}
	}
	return w.End()
}

// GameEnd closes a finished round. Winner seats carry 1, the rest -1.
type GameEnd struct {
	protocol.D
	Winners []int
}

func parseGameEnd(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tend")
	if err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	winners, err := r.Ints()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameEnd{D: d, Winners: winners}, nil
}

// Write serializes the packet.
func (p *GameEnd) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tend")
	w.Ints(p.Winners)
	return w.End()
}

// GameOwnInfo tells the client its own seat in the room.
type GameOwnInfo struct {
	protocol.D
	Index int
	Name  string
	Clan  string
}

func parseGameOwnInfo(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\towninfo")
	if err != nil {
		return nil, err
	}
	p := &GameOwnInfo{D: d}
	if p.Index, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.Name, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Clan, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameOwnInfo) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\towninfo")
	w.Int(p.Index)
	w.Field(p.Name)
	w.Field(p.Clan)
	return w.End()
}

// GameScoringMulti carries the per-track score multipliers of weighted
// scoring.
type GameScoringMulti struct {
	protocol.D
	Multipliers []int
}

func parseGameScoringMulti(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tscoringmulti")
	if err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	ms, err := r.Ints()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameScoringMulti{D: d, Multipliers: ms}, nil
}

// Write serializes the packet.
func (p *GameScoringMulti) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tscoringmulti")
	w.Ints(p.Multipliers)
	return w.End()
}

// GameCr hands the client a reconnect token.
type GameCr struct {
	protocol.D
	Token string
}

func parseGameCr(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tcr")
	if err != nil {
		return nil, err
	}
	token, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameCr{D: d, Token: token}, nil
}

// Write serializes the packet.
func (p *GameCr) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tcr")
	w.Field(p.Token)
	return w.End()
}

// GameChangeScore updates every seat's score after a stroke.
type GameChangeScore struct {
	protocol.D
	Scores []int
}

func parseGameChangeScore(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tchangescore")
	if err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	scores, err := r.Ints()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameChangeScore{D: d, Scores: scores}, nil
}

// Write serializes the packet.
func (p *GameChangeScore) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tchangescore")
	w.Ints(p.Scores)
	return w.End()
}

// GameVoteSkip reports that a seat voted to skip the track.
type GameVoteSkip struct {
	protocol.D
	Index int
}

func parseGameVoteSkip(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tvoteskip")
	if err != nil {
		return nil, err
	}
	idx, err := r.TabUint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameVoteSkip{D: d, Index: idx}, nil
}

// Write serializes the packet.
func (p *GameVoteSkip) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tvoteskip")
	w.Int(p.Index)
	return w.End()
}

// GameRfng reports that a seat is ready for a new game.
type GameRfng struct {
	protocol.D
	Index int
}

func parseGameRfng(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\trfng")
	if err != nil {
		return nil, err
	}
	idx, err := r.TabUint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameRfng{D: d, Index: idx}, nil
}

// Write serializes the packet.
func (p *GameRfng) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\trfng")
	w.Int(p.Index)
	return w.End()
}

// GameResetVoteSkip clears the skip votes at a track change.
type GameResetVoteSkip struct {
	protocol.D
}

func parseGameResetVoteSkip(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tresetvoteskip")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameResetVoteSkip{D: d}, nil
}

// Write serializes the packet.
func (p *GameResetVoteSkip) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tresetvoteskip")
	return w.End()
}

// GameStartTrack deals a new track. Players is one letter per playing
// seat, Seed feeds the client's terrain generator, and the track strings
// carry the track data lines.
type GameStartTrack struct {
	protocol.D
	Players string
	Seed    int
	Tracks  []string
}

func parseGameStartTrack(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tstarttrack")
	if err != nil {
		return nil, err
	}
	p := &GameStartTrack{D: d}
	if p.Players, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Seed, err = r.TabInt(); err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	p.Tracks = r.Fields()
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameStartTrack) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tstarttrack")
	w.Field(p.Players)
	w.Int(p.Seed)
	for _, t := range p.Tracks {
		w.Field(t)
	}
	return w.End()
}

// GameGame acknowledges a quick game request before the room exists.
type GameGame struct {
	protocol.D
}

func parseGameGame(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tgame")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameGame{D: d}, nil
}

// Write serializes the packet.
func (p *GameGame) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tgame")
	return w.End()
}

// GameStartTurn opens the named seat's turn.
type GameStartTurn struct {
	protocol.D
	Index int
}

func parseGameStartTurn(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tstartturn")
	if err != nil {
		return nil, err
	}
	idx, err := r.TabUint()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameStartTurn{D: d, Index: idx}, nil
}

// Write serializes the packet.
func (p *GameStartTurn) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tstartturn")
	w.Int(p.Index)
	return w.End()
}

// GameStart begins play once every seat has confirmed the track.
type GameStart struct {
	protocol.D
}

func parseGameStart(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tstart")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &GameStart{D: d}, nil
}

// Write serializes the packet.
func (p *GameStart) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tstart")
	return w.End()
}

// GameSay relays room chat with the speaker's seat.
type GameSay struct {
	protocol.D
	Index   int
	Message string
}

func parseGameSay(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tsay")
	if err != nil {
		return nil, err
	}
	p := &GameSay{D: d}
	if p.Index, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.Message, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameSay) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tsay")
	w.Int(p.Index)
	w.Field(p.Message)
	return w.End()
}

// GamePart announces a seat leaving the room.
type GamePart struct {
	protocol.D
	Index  int
	Reason int
}

func parseGamePart(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tpart")
	if err != nil {
		return nil, err
	}
	p := &GamePart{D: d}
	if p.Index, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.Reason, err = r.TabUint(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GamePart) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tpart")
	w.Int(p.Index)
	w.Int(p.Reason)
	return w.End()
}

// GameJoin announces a seat joining the room.
type GameJoin struct {
	protocol.D
	Index int
	Name  string
	Clan  string
}

func parseGameJoin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tjoin")
	if err != nil {
		return nil, err
	}
	p := &GameJoin{D: d}
	if p.Index, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.Name, err = r.TabField(); err != nil {
		return nil, err
	}
	if p.Clan, err = r.TabField(); err != nil {
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
	w.Int(p.Index)
	w.Field(p.Name)
	w.Field(p.Clan)
	return w.End()
}

// GameBeginStroke relays a stroke to the other seats.
type GameBeginStroke struct {
	protocol.D
	Index  int
	Coords string
}

func parseGameBeginStroke(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("game\tbeginstroke")
	if err != nil {
		return nil, err
	}
	p := &GameBeginStroke{D: d}
	if p.Index, err = r.TabUint(); err != nil {
		return nil, err
	}
	if p.Coords, err = r.TabField(); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return p, nil
}

// Write serializes the packet.
func (p *GameBeginStroke) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("game\tbeginstroke")
	w.Int(p.Index)
	w.Field(p.Coords)
	return w.End()
}
