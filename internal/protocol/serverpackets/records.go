package serverpackets

import (
	"strconv"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// Game is the fifteen-field game summary embedded in the gamelist packets.
// It has no tag of its own; lists join records with tabs, so the field
// count is what keeps consecutive records apart.
type Game struct {
	ID         int
	Name       string
	Passworded bool
	Permission int
	MaxPlayers int
	Unused     int
	NumTracks  int
	TrackType  protocol.TrackType
	MaxStrokes int
	TimeLimit  int
	WaterEvent protocol.WaterEvent
	Collision  protocol.Collision
	Scoring    protocol.Scoring
	WeightEnd  protocol.WeightEnd
	NumPlayers int
}

func parseGame(r *protocol.Reader) (Game, error) {
	var g Game
	var err error
	if g.ID, err = r.Uint(); err != nil {
		return Game{}, err
	}
	if g.Name, err = r.TabField(); err != nil {
		return Game{}, err
	}
	if g.Passworded, err = r.TabBool(); err != nil {
		return Game{}, err
	}
	if g.Permission, err = r.TabInt(); err != nil {
		return Game{}, err
	}
	if g.MaxPlayers, err = r.TabUint(); err != nil {
		return Game{}, err
	}
	if g.Unused, err = r.TabInt(); err != nil {
		return Game{}, err
	}
	if g.NumTracks, err = r.TabUint(); err != nil {
		return Game{}, err
	}
	if g.TrackType, err = r.TabTrackType(); err != nil {
		return Game{}, err
	}
	if g.MaxStrokes, err = r.TabInt(); err != nil {
		return Game{}, err
	}
	if g.TimeLimit, err = r.TabInt(); err != nil {
		return Game{}, err
	}
	if g.WaterEvent, err = r.TabWaterEvent(); err != nil {
		return Game{}, err
	}
	if g.Collision, err = r.TabCollision(); err != nil {
		return Game{}, err
	}
	if g.Scoring, err = r.TabScoring(); err != nil {
		return Game{}, err
	}
	if g.WeightEnd, err = r.TabWeightEnd(); err != nil {
		return Game{}, err
	}
	if g.NumPlayers, err = r.TabUint(); err != nil {
		return Game{}, err
	}
	return g, nil
}

func (g *Game) write(w *protocol.Writer) {
	w.Raw(strconv.Itoa(g.ID))
	w.Field(g.Name)
	w.Bool(g.Passworded)
	w.Int(g.Permission)
	w.Int(g.MaxPlayers)
	w.Int(g.Unused)
	w.Int(g.NumTracks)
	w.Field(g.TrackType.String())
	w.Int(g.MaxStrokes)
	w.Int(g.TimeLimit)
	w.Field(g.WaterEvent.String())
	w.Field(g.Collision.String())
	w.Field(g.Scoring.String())
	w.Field(g.WeightEnd.String())
	w.Int(g.NumPlayers)
}

func parseGames(r *protocol.Reader) ([]Game, error) {
	g, err := parseGame(r)
	if err != nil {
		return nil, err
	}
	out := []Game{g}
	for {
		rewind := *r
		if !r.SkipTab() {
			return out, nil
		}
		g, err := parseGame(r)
		if err != nil {
			*r = rewind
			return out, nil
		}
		out = append(out, g)
	}
}

// Tracklist is one row of the single lobby track set list: the set name,
// difficulty and size, then name and stroke count of the all time, month,
// week and day records.
type Tracklist struct {
	Name       string
	Difficulty protocol.Difficulty
	Tracks     int

	AllTimeBestName    string
	AllTimeBestStrokes int
	MonthBestName      string
	MonthBestStrokes   int
	WeekBestName       string
	WeekBestStrokes    int
	DayBestName        string
	DayBestStrokes     int
}

func parseTracklist(r *protocol.Reader) (Tracklist, error) {
	var t Tracklist
	var err error
	t.Name = r.Field()
	if t.Difficulty, err = r.TabDifficulty(); err != nil {
		return Tracklist{}, err
	}
	if t.Tracks, err = r.TabInt(); err != nil {
		return Tracklist{}, err
	}
	if t.AllTimeBestName, err = r.TabField(); err != nil {
		return Tracklist{}, err
	}
	if t.AllTimeBestStrokes, err = r.TabInt(); err != nil {
		return Tracklist{}, err
	}
	if t.MonthBestName, err = r.TabField(); err != nil {
		return Tracklist{}, err
	}
	if t.MonthBestStrokes, err = r.TabInt(); err != nil {
		return Tracklist{}, err
	}
	if t.WeekBestName, err = r.TabField(); err != nil {
		return Tracklist{}, err
	}
	if t.WeekBestStrokes, err = r.TabInt(); err != nil {
		return Tracklist{}, err
	}
	if t.DayBestName, err = r.TabField(); err != nil {
		return Tracklist{}, err
	}
	if t.DayBestStrokes, err = r.TabInt(); err != nil {
		return Tracklist{}, err
	}
	return t, nil
}

func (t *Tracklist) write(w *protocol.Writer) {
	w.Raw(t.Name)
	w.Field(t.Difficulty.String())
	w.Int(t.Tracks)
	w.Field(t.AllTimeBestName)
	w.Int(t.AllTimeBestStrokes)
	w.Field(t.MonthBestName)
	w.Int(t.MonthBestStrokes)
	w.Field(t.WeekBestName)
	w.Int(t.WeekBestStrokes)
	w.Field(t.DayBestName)
	w.Int(t.DayBestStrokes)
}

func parseTracklists(r *protocol.Reader) ([]Tracklist, error) {
	t, err := parseTracklist(r)
	if err != nil {
		return nil, err
	}
	out := []Tracklist{t}
	for {
		rewind := *r
		if !r.SkipTab() {
			return out, nil
		}
		t, err := parseTracklist(r)
		if err != nil {
			*r = rewind
			return out, nil
		}
		out = append(out, t)
	}
}

// Player is the short per-seat record in the game player list. Clan is "-"
// when the player has none.
type Player struct {
	Index int
	Name  string
	Clan  string
}

func parsePlayer(r *protocol.Reader) (Player, error) {
	var p Player
	var err error
	if p.Index, err = r.Uint(); err != nil {
		return Player{}, err
	}
	if p.Name, err = r.TabField(); err != nil {
		return Player{}, err
	}
	if p.Clan, err = r.TabField(); err != nil {
		return Player{}, err
	}
	return p, nil
}

func (p *Player) write(w *protocol.Writer) {
	w.Raw(strconv.Itoa(p.Index))
	w.Field(p.Name)
	w.Field(p.Clan)
}

func parsePlayers(r *protocol.Reader) ([]Player, error) {
	p, err := parsePlayer(r)
	if err != nil {
		return nil, err
	}
	out := []Player{p}
	for {
		rewind := *r
		if !r.SkipTab() {
			return out, nil
		}
		p, err := parsePlayer(r)
		if err != nil {
			*r = rewind
			return out, nil
		}
		out = append(out, p)
	}
}
