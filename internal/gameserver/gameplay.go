package gameserver

import (
	"log/slog"

	"github.com/Nokkasiili/minigolf-server/internal/game"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// handleGame covers packets from clients seated in a room.
func (s *Server) handleGame(c *world.Client, pkt protocol.Packet) {
	roomID, ok := c.Game()
	if !ok {
		return
	}
	room := s.rooms.Get(roomID)
	if room == nil {
		c.ClearGame()
		return
	}

	switch p := pkt.(type) {
	case *clientpackets.GameRate:
		c.Send(&serverpackets.LobbySheriffSay{D: c.NextNum(), Message: "lol"})
	case *clientpackets.GameBeginStroke:
		index, ok := room.SeatIndex(c.ID())
		if !ok {
			return
		}
		if index != room.Turn() {
			slog.Debug("stroke out of turn", slog.String("name", c.Name()))
			return
		}
		s.broadcastGame(roomID, room, func(o *world.Client) {
			if o.ID() == c.ID() {
				return
			}
			o.Send(&serverpackets.GameBeginStroke{
				D:      o.NextNum(),
				Index:  index,
				Coords: p.Coords,
			})
		})
	case *clientpackets.GameEndStroke:
		s.endStroke(c, room, p)
	case *clientpackets.GameSkip:
		if room.IsSolo() {
			room.NextTrack(s.clients)
		}
	case *clientpackets.GameVoteSkip:
		if room.Status() == game.WaitingPlayers || room.Status() == game.Ended {
			return
		}
		if index, ok := room.SeatIndex(c.ID()); ok {
			room.Seats()[index].WantSkip = true
		}
		if room.WantSkip() {
			room.NextTrack(s.clients)
		}
	case *clientpackets.GameJoin:
		s.switchRoom(c, room, p)
	case *clientpackets.GameBack:
		s.gameBack(c, roomID, room)
	case *clientpackets.GameSay:
		s.gameSay(c, roomID, room, p)
	case *clientpackets.GameNewGame, *clientpackets.GameStartTurn,
		*clientpackets.GameBackToPrivate, *clientpackets.GameRejectAccept:
		// Private room bookkeeping the client sends on its own. Accepted
		// and dropped.
	}
}

// endStroke books the stroke result the client reports after its ball
// stops. The in-hole vector covers every seat; a flag can only ever go up.
func (s *Server) endStroke(c *world.Client, room *game.Room, p *clientpackets.GameEndStroke) {
	if p.Index != room.Turn() {
		slog.Warn("end stroke out of turn", slog.String("name", c.Name()))
		return
	}
	if len(p.InHole) != room.MaxPlayers() {
		slog.Warn("malformed end stroke",
			slog.String("name", c.Name()), slog.String("inhole", p.InHole))
		return
	}
	if index, ok := room.SeatIndex(c.ID()); ok {
		room.Seats()[index].SentEndStroke = true
	}
	for i := 0; i < len(p.InHole) && i < len(room.Seats()); i++ {
		seat := room.Seats()[i]
		if seat.InHole && p.InHole[i] == 'f' {
			slog.Warn("client tried to clear an in-hole flag, clients are not in sync",
				slog.String("name", c.Name()))
		}
		if p.InHole[i] == 't' {
			seat.InHole = true
		}
	}
}

// switchRoom seats the client in another room straight from the results
// screen. The old seat is marked gone so the finished room can be reaped.
func (s *Server) switchRoom(c *world.Client, old *game.Room, p *clientpackets.GameJoin) {
	roomID, room := s.rooms.ByNetworkID(world.NetworkID(p.ID))
	if room == nil {
		return
	}
	if err := room.AddPlayer(c.ID()); err != nil {
		slog.Debug("join refused",
			slog.String("name", c.Name()), slog.Any("error", err))
		return
	}
	if index, ok := old.SeatIndex(c.ID()); ok {
		old.Seats()[index].InGame = false
	}
	c.SetGame(roomID)
	s.gameJoin(c, room)
	s.gameChanged(roomID)
}

// gameBack returns the client to its lobby. Everyone in the room, the
// leaver included, sees the part; a waiting room gives the seat up, a
// running game keeps the seat as a ghost so indices hold.
func (s *Server) gameBack(c *world.Client, roomID world.GameID, room *game.Room) {
	index, ok := room.SeatIndex(c.ID())
	if !ok {
		c.ClearGame()
		return
	}

	reason := 4
	if room.Status() == game.WaitingPlayers {
		reason = 6
	}
	s.broadcastGame(roomID, room, func(o *world.Client) {
		o.Send(&serverpackets.GamePart{D: o.NextNum(), Index: index, Reason: reason})
	})

	if room.Status() == game.WaitingPlayers {
		room.RemoveSeat(index)
		s.gameChanged(roomID)
	} else {
		room.Seats()[index].InGame = false
	}
	c.ClearGame()

	lobby, ok := c.Lobby()
	if !ok {
		return
	}
	s.onLobbyJoin(c, lobby, fromGame)
}

// gameSay relays room chat to the other seats.
func (s *Server) gameSay(c *world.Client, roomID world.GameID, room *game.Room, p *clientpackets.GameSay) {
	index, ok := room.SeatIndex(c.ID())
	if !ok {
		return
	}
	if !s.allowSay(c, p.Message) {
		return
	}
	s.broadcastGame(roomID, room, func(o *world.Client) {
		if o.ID() == c.ID() {
			return
		}
		o.Send(&serverpackets.GameSay{
			D:       o.NextNum(),
			Index:   index,
			Message: p.Message,
		})
	})
}

// broadcastGame sends to every client still seated and present in the
// room. Seats outlive their players, so membership is checked against the
// registry before every delivery.
func (s *Server) broadcastGame(roomID world.GameID, room *game.Room, fn func(*world.Client)) {
	for _, seat := range room.Seats() {
		o := s.clients.Get(seat.ID)
		if o == nil {
			continue
		}
		if g, ok := o.Game(); !ok || g != roomID {
			continue
		}
		fn(o)
	}
}
