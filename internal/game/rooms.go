package game

import (
	"log/slog"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// Rooms is the arena of live rooms. Like the client registry, slots are
// reused and all access happens on the tick goroutine.
type Rooms struct {
	slots []*Room
	free  []world.GameID
	ids   *world.IDGenerator
}

// NewRooms returns an empty room arena.
func NewRooms() *Rooms {
	return &Rooms{ids: world.NewIDGenerator()}
}

// Add stores a room and returns its arena id.
func (rs *Rooms) Add(r *Room) world.GameID {
	var id world.GameID
	if n := len(rs.free); n > 0 {
		id = rs.free[n-1]
		rs.free = rs.free[:n-1]
		rs.slots[id] = r
	} else {
		id = world.GameID(len(rs.slots))
		rs.slots = append(rs.slots, r)
	}
	slog.Debug("room added", "id", int(id), "name", r.Name(), "type", r.typ.String())
	return id
}

// Get returns the room with the given id, or nil.
func (rs *Rooms) Get(id world.GameID) *Room {
	if id < 0 || int(id) >= len(rs.slots) {
		return nil
	}
	return rs.slots[id]
}

// Remove frees a room slot.
func (rs *Rooms) Remove(id world.GameID) {
	if rs.Get(id) == nil {
		return
	}
	rs.slots[id] = nil
	rs.free = append(rs.free, id)
}

// ByNetworkID finds the room carrying the given gamelist id.
func (rs *Rooms) ByNetworkID(nid world.NetworkID) (world.GameID, *Room) {
	for i, r := range rs.slots {
		if r != nil && r.networkID == nid {
			return world.GameID(i), r
		}
	}
	return world.NoGame, nil
}

// CreateSolo builds a single-player practice round and seats the creator.
// Incognito players get a plain solo room too; the type only matters for
// lobby bookkeeping.
func (rs *Rooms) CreateSolo(creator world.ClientID, p *clientpackets.LobbyCspt) world.GameID {
	r := &Room{
		typ:        protocol.LobbySolo,
		maxPlayers: 1,
		numTracks:  p.NumTracks,
		trackType:  p.TrackType,
		waterEvent: p.WaterEvent,
		collision:  protocol.CollisionOn,
		scoring:    protocol.ScoringScore,
		weightEnd:  protocol.WeightNone,
		status:     WaitingPlayers,
		networkID:  rs.ids.Next(),
	}
	r.seats = append(r.seats, &Seat{ID: creator, InGame: true})
	return rs.Add(r)
}

// CreateMulti builds a custom multiplayer room from the cmpt ruleset and
// seats the creator.
func (rs *Rooms) CreateMulti(creator world.ClientID, p *clientpackets.LobbyCmpt) world.GameID {
	r := &Room{
		typ:        protocol.LobbyMulti,
		name:       fieldOrEmpty(p.GameName),
		password:   fieldOrEmpty(p.Password),
		permission: p.Permission,
		maxPlayers: p.MaxPlayers,
		numTracks:  p.NumTracks,
		trackType:  p.TrackType,
		maxStrokes: p.MaxStrokes,
		timeLimit:  p.TimeLimit,
		waterEvent: p.WaterEvent,
		collision:  p.Collision,
		scoring:    p.Scoring,
		weightEnd:  p.WeightEnd,
		status:     WaitingPlayers,
		networkID:  rs.ids.Next(),
	}
	r.seats = append(r.seats, &Seat{ID: creator, InGame: true})
	return rs.Add(r)
}

// CreateChallenge builds the private duo room for a challenge. The
// challenged player's name names the room and the challenger's name keys
// it, which is how accept and cancel find it again. Nobody is seated yet.
func (rs *Rooms) CreateChallenge(p *clientpackets.LobbyChallenge, challenger string) world.GameID {
	r := &Room{
		typ:        protocol.LobbyDuo,
		name:       p.Challenged,
		password:   challenger,
		maxPlayers: 2,
		numTracks:  p.NumTracks,
		trackType:  p.TrackType,
		maxStrokes: p.MaxStrokes,
		timeLimit:  p.TimeLimit,
		waterEvent: p.WaterEvent,
		collision:  p.Collision,
		scoring:    p.Scoring,
		weightEnd:  p.WeightEnd,
		status:     WaitingPlayers,
		networkID:  rs.ids.Next(),
	}
	return rs.Add(r)
}

// FindDuo locates the pending challenge room for a challenged/challenger
// name pair.
func (rs *Rooms) FindDuo(challenged, challenger string) (world.GameID, *Room) {
	for i, r := range rs.slots {
		if r != nil && r.typ == protocol.LobbyDuo && r.name == challenged && r.password == challenger {
			return world.GameID(i), r
		}
	}
	return world.NoGame, nil
}

// RemoveDuo tears down the pending challenge room the given challenger
// opened, if any.
func (rs *Rooms) RemoveDuo(challenger string) {
	for i, r := range rs.slots {
		if r != nil && r.typ == protocol.LobbyDuo && r.password == challenger {
			slog.Debug("removing challenge room", "challenger", challenger)
			rs.Remove(world.GameID(i))
			return
		}
	}
}

// HandleRooms is the per-tick sweep: starts rooms that filled up, advances
// turns and tracks for rooms where every stroke is in, and reaps empty
// rooms.
func (rs *Rooms) HandleRooms(clients *world.Clients) {
	var remove []world.GameID

	for i, room := range rs.slots {
		if room == nil {
			continue
		}
		id := world.GameID(i)

		if room.status == WaitingPlayers && len(room.seats) == room.maxPlayers {
			room.Start(clients)
			if room.typ == protocol.LobbyMulti {
				rs.broadcastGamelistRemove(clients, room)
			}
		}

		if room.PlayingPlayers() == 0 {
			remove = append(remove, id)
			if room.status == WaitingPlayers && room.typ == protocol.LobbyMulti {
				rs.broadcastGamelistRemove(clients, room)
			}
			continue
		}

		if room.AllEndStrokes() {
			if turn, ok := room.NextTurn(); ok {
				for _, seat := range room.seats {
					if c := clients.Get(seat.ID); c != nil {
						c.Send(&serverpackets.GameStartTurn{D: c.NextNum(), Index: turn})
					}
				}
			} else {
				room.NextTrack(clients)
			}
			for _, seat := range room.seats {
				seat.SentEndStroke = false
			}
		}

		if room.status != Ended && room.WantSkip() {
			room.NextTrack(clients)
		}
	}

	for _, id := range remove {
		rs.Remove(id)
	}
}

// ForEach calls fn for every live room in slot order.
func (rs *Rooms) ForEach(fn func(world.GameID, *Room)) {
	for i, room := range rs.slots {
		if room != nil {
			fn(world.GameID(i), room)
		}
	}
}

// GameList returns the number of joinable rooms and their gamelist
// records, nil when there are none.
func (rs *Rooms) GameList() (int, []serverpackets.Game) {
	var games []serverpackets.Game
	for _, r := range rs.slots {
		if r != nil && r.status == WaitingPlayers {
			games = append(games, r.Summary())
		}
	}
	return len(games), games
}

func (rs *Rooms) broadcastGamelistRemove(clients *world.Clients, room *Room) {
	clients.ForEachIdle(protocol.LobbyMulti, func(c *world.Client) {
		c.Send(&serverpackets.LobbyGamelistRemove{
			D:  c.NextNum(),
			ID: int(room.networkID),
		})
	})
}

// fieldOrEmpty collapses the wire's "-" placeholder to an unset name.
func fieldOrEmpty(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
