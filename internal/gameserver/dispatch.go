package gameserver

import (
	"log/slog"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/game"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// dispatch routes one inbound packet by where the client is in its life:
// the lobby select screen, a lobby, or a game. Pongs are handled here for
// every state.
func (s *Server) dispatch(c *world.Client, pkt protocol.Packet) {
	if _, ok := pkt.(*clientpackets.Pong); ok {
		c.SetLastPong(time.Now())
		return
	}

	lobby, inLobby := c.Lobby()
	switch {
	case !inLobby && !c.InGame():
		s.handleLobbySelect(c, pkt)
	case !c.InGame():
		switch lobby {
		case protocol.LobbySolo, protocol.LobbySoloIncognito:
			s.handleSingle(c, pkt)
		case protocol.LobbyDuo:
			s.handleDual(c, pkt)
		case protocol.LobbyMulti:
			s.handleMulti(c, pkt)
		}
		s.handleLobby(c, pkt)
	default:
		s.handleGame(c, pkt)
	}
}

func (s *Server) handleLobbySelect(c *world.Client, pkt protocol.Packet) {
	switch p := pkt.(type) {
	case *clientpackets.LobbySelectRnop:
		solo, duo, multi := s.clients.CountPlayers()
		c.Send(&serverpackets.LobbySelectNop{
			D:      c.NextNum(),
			Single: solo,
			Versus: duo,
			Multi:  multi,
		})
	case *clientpackets.LobbySelectSelect:
		s.onLobbyJoin(c, p.Lobby, fromLobbySelect)
	case *clientpackets.LobbySelectCspt:
		// Solo play straight from the select screen. The client behaves as
		// if it had entered the solo lobby first, so the server does too.
		c.SetLobby(protocol.LobbySolo)
		s.createSolo(c, &clientpackets.LobbyCspt{
			NumTracks:  p.NumTracks,
			TrackType:  p.TrackType,
			WaterEvent: p.WaterEvent,
		})
	case *clientpackets.LobbySelectQmpt:
		s.quickJoin(c)
	case *clientpackets.LobbyQuit:
		c.Disconnect()
	default:
		slog.Warn("wrong packet on lobby select",
			slog.String("name", c.Name()), slog.Any("packet", pkt))
	}
}

// quickJoin seats the client in the first open multiplayer room: waiting
// for players, no password, no permission gate, a seat free. No room means
// the request is quietly dropped, the client falls back to the lobby.
func (s *Server) quickJoin(c *world.Client) {
	var roomID world.GameID
	var room *game.Room
	s.rooms.ForEach(func(id world.GameID, r *game.Room) {
		if room != nil {
			return
		}
		if r.Type() != protocol.LobbyMulti || r.Status() != game.WaitingPlayers {
			return
		}
		if r.Passworded() || r.Permission() != 0 {
			return
		}
		if len(r.Seats()) >= r.MaxPlayers() {
			return
		}
		roomID, room = id, r
	})
	if room == nil {
		return
	}
	if err := room.AddPlayer(c.ID()); err != nil {
		slog.Debug("quick join refused",
			slog.String("name", c.Name()), slog.Any("error", err))
		return
	}
	c.SetLobby(protocol.LobbyMulti)
	c.SetGame(roomID)
	s.gameJoin(c, room)
	s.gameChanged(roomID)
}
