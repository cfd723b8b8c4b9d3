// Package game runs the minigolf rooms: seating, the turn rotation, track
// advancement, and the per-tick room sweep. Rooms are driven entirely from
// the tick goroutine.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// ErrRoomFull is returned when a seat is requested in a full room.
var ErrRoomFull = errors.New("room is full")

// Status is the room lifecycle phase.
type Status int

const (
	WaitingPlayers Status = iota
	WaitingStroke
	InGame
	Ended
)

// Seat is one player's slot in a room. Seats are appended in join order;
// the index doubles as the player index on the wire.
type Seat struct {
	ID            world.ClientID
	InHole        bool
	InGame        bool
	WantSkip      bool
	Strokes       int
	SentEndStroke bool
}

// Room is a single game: a solo practice round, a duo challenge match, or a
// custom multiplayer game.
type Room struct {
	typ        protocol.LobbyType
	name       string // "" shows as "#<network id>"
	password   string
	permission int
	maxPlayers int

	turn     int
	curTrack int

	numTracks  int
	trackType  protocol.TrackType
	maxStrokes int
	timeLimit  int
	waterEvent protocol.WaterEvent
	collision  protocol.Collision
	scoring    protocol.Scoring
	weightEnd  protocol.WeightEnd

	status    Status
	networkID world.NetworkID
	seats     []*Seat
}

// Type returns the lobby type the room was created from.
func (r *Room) Type() protocol.LobbyType { return r.typ }

// IsSolo reports whether the room is a single-player round.
func (r *Room) IsSolo() bool {
	return r.typ == protocol.LobbySolo || r.typ == protocol.LobbySoloIncognito
}

// Status returns the lifecycle phase.
func (r *Room) Status() Status { return r.status }

// NetworkID returns the id gamelist entries carry.
func (r *Room) NetworkID() world.NetworkID { return r.networkID }

// Turn returns the seat index whose stroke the room is waiting on.
func (r *Room) Turn() int { return r.turn }

// MaxPlayers returns the seat limit.
func (r *Room) MaxPlayers() int { return r.maxPlayers }

// Passworded reports whether joining needs the room password.
func (r *Room) Passworded() bool { return r.password != "" }

// Permission returns the join permission level, 0 for everyone.
func (r *Room) Permission() int { return r.permission }

// Seats returns the live seat list in join order.
func (r *Room) Seats() []*Seat { return r.seats }

// Name returns the display name, falling back to the network id.
func (r *Room) Name() string {
	if r.name == "" {
		return fmt.Sprintf("#%d", r.networkID)
	}
	return r.name
}

// AddPlayer seats a client in join order.
func (r *Room) AddPlayer(id world.ClientID) error {
	if len(r.seats) >= r.maxPlayers {
		slog.Error("seat requested in full room", "room", r.Name(), "max", r.maxPlayers)
		return ErrRoomFull
	}
	r.seats = append(r.seats, &Seat{ID: id, InGame: true})
	return nil
}

// RemoveSeat drops the seat at index, shifting later seats down.
func (r *Room) RemoveSeat(index int) {
	if index < 0 || index >= len(r.seats) {
		return
	}
	r.seats = append(r.seats[:index], r.seats[index+1:]...)
}

// SeatIndex returns the seat index of the given client.
func (r *Room) SeatIndex(id world.ClientID) (int, bool) {
	for i, s := range r.seats {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

// PlayingPlayers counts seats still playing.
func (r *Room) PlayingPlayers() int {
	n := 0
	for _, s := range r.seats {
		if s.InGame {
			n++
		}
	}
	return n
}

// WantSkip reports whether every playing seat has voted to skip or holed
// out already.
func (r *Room) WantSkip() bool {
	skips := 0
	for _, s := range r.seats {
		if s.InGame && (s.WantSkip || s.InHole) {
			skips++
		}
	}
	return skips == r.PlayingPlayers()
}

// AllEndStrokes reports whether every playing seat has reported the end of
// the current stroke.
func (r *Room) AllEndStrokes() bool {
	done := 0
	for _, s := range r.seats {
		if s.InGame && s.SentEndStroke {
			done++
		}
	}
	return done == r.PlayingPlayers()
}

// AllInHole reports whether every playing seat has holed out.
func (r *Room) AllInHole() bool {
	holed := 0
	for _, s := range r.seats {
		if s.InGame && s.InHole {
			holed++
		}
	}
	return holed == r.PlayingPlayers()
}

// NextTurn rotates to the next seat still playing and not yet in the hole.
// The rotation is kept even when it finds nobody.
func (r *Room) NextTurn() (int, bool) {
	for range r.seats {
		r.turn = (r.turn + 1) % len(r.seats)
		s := r.seats[r.turn]
		if s.InGame && !s.InHole {
			return r.turn, true
		}
	}
	return 0, false
}

// PlayersString encodes seat liveness for starttrack, one 't' or 'f' per
// seat in index order.
func (r *Room) PlayersString() string {
	b := make([]byte, len(r.seats))
	for i, s := range r.seats {
		if s.InGame {
			b[i] = 't'
		} else {
			b[i] = 'f'
		}
	}
	return string(b)
}

// Start begins play: first track, everyone told the track and whose turn
// it is.
func (r *Room) Start(clients *world.Clients) {
	r.status = InGame
	r.curTrack++

	for _, seat := range r.seats {
		c := clients.Get(seat.ID)
		if c == nil {
			continue
		}
		c.Send(&serverpackets.GameStart{D: c.NextNum()})
		c.Send(r.startTrack(c))
		c.Send(&serverpackets.GameStartTurn{D: c.NextNum(), Index: r.turn})
	}
}

// NextTrack advances past the current track, ending the game after the
// last one.
func (r *Room) NextTrack(clients *world.Clients) {
	next := r.curTrack + 1
	if next > r.numTracks {
		for _, seat := range r.seats {
			if c := clients.Get(seat.ID); c != nil {
				c.Send(&serverpackets.GameEnd{D: c.NextNum(), Winners: []int{1}})
			}
		}
		r.status = Ended
		return
	}

	for _, seat := range r.seats {
		seat.InHole = false
		seat.WantSkip = false
	}
	r.curTrack = next

	turn, ok := r.NextTurn()
	if !ok {
		slog.Error("no playable seat for next track", "room", r.Name())
		r.status = Ended
		return
	}

	for _, seat := range r.seats {
		c := clients.Get(seat.ID)
		if c == nil {
			continue
		}
		c.Send(&serverpackets.GameResetVoteSkip{D: c.NextNum()})
		c.Send(r.startTrack(c))
		c.Send(&serverpackets.GameStartTurn{D: c.NextNum(), Index: turn})
	}
}

// startTrack builds the per-client starttrack packet for the current track.
func (r *Room) startTrack(c *world.Client) *serverpackets.GameStartTrack {
	return &serverpackets.GameStartTrack{
		D:       c.NextNum(),
		Players: r.PlayersString(),
		Seed:    0,
		Tracks:  defaultTrack,
	}
}

// Summary projects the room into a gamelist record.
func (r *Room) Summary() serverpackets.Game {
	return serverpackets.Game{
		ID:         int(r.networkID),
		Name:       r.Name(),
		Passworded: r.password != "",
		Permission: r.permission,
		MaxPlayers: r.maxPlayers,
		Unused:     constants.GamelistUnused,
		NumTracks:  r.numTracks,
		TrackType:  r.trackType,
		MaxStrokes: r.maxStrokes,
		TimeLimit:  r.timeLimit,
		WaterEvent: r.waterEvent,
		Collision:  r.collision,
		Scoring:    r.scoring,
		WeightEnd:  r.weightEnd,
		NumPlayers: len(r.seats),
	}
}

// Info projects the room into the gameinfo packet sent on join. Unlike the
// gamelist record, an unnamed room shows as "-" here.
func (r *Room) Info(num protocol.D) *serverpackets.GameGameInfo {
	name := r.name
	if name == "" {
		name = "-"
	}
	return &serverpackets.GameGameInfo{
		D:          num,
		Name:       name,
		Passworded: r.password != "",
		Permission: r.permission,
		Players:    r.maxPlayers,
		NumTracks:  r.numTracks,
		TrackType:  r.trackType,
		MaxStrokes: r.maxStrokes,
		StrokeTime: r.timeLimit,
		WaterEvent: r.waterEvent,
		Collision:  r.collision,
		Scoring:    r.scoring,
		WeightEnd:  r.weightEnd,
		Unused:     false,
	}
}
