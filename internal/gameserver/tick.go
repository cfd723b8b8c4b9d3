package gameserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/game"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// RunTicks drives the world at five updates a second until ctx is
// canceled. Every piece of game state is touched from this goroutine only:
// the connection side hands finished logins over through a channel and the
// tick picks them up here.
func (s *Server) RunTicks(ctx context.Context) error {
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	lastPing := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		start := time.Now()

		s.acceptNewPlayers()
		s.removeOldPlayers(lastPing)
		s.rooms.HandleRooms(s.clients)
		s.handlePackets()

		if time.Since(lastPing) > constants.PingInterval {
			s.clients.ForEach(func(c *world.Client) {
				c.Send(&serverpackets.Ping{})
			})
			lastPing = time.Now()
		}

		if elapsed := time.Since(start); elapsed > constants.TickInterval {
			slog.Warn("tick took too long", slog.Duration("elapsed", elapsed))
		}
	}
}

// acceptNewPlayers registers every login the connection goroutines have
// handed over since the last tick.
func (s *Server) acceptNewPlayers() {
	for {
		select {
		case params := <-s.handoff:
			c := world.NewClient(params)
			id := s.clients.Add(c)
			slog.Debug("client registered",
				slog.String("name", c.Name()), slog.Int("id", int(id)))
		default:
			return
		}
	}
}

// removeOldPlayers reaps clients whose connection dropped or who missed a
// whole ping round. lastPing is when the current round was broadcast, so a
// pong older than that by the timeout means the client went silent.
func (s *Server) removeOldPlayers(lastPing time.Time) {
	var stale []*world.Client
	s.clients.ForEach(func(c *world.Client) {
		if c.Disconnected() || lastPing.Sub(c.LastPong()) > constants.PongTimeout {
			stale = append(stale, c)
		}
	})
	for _, c := range stale {
		s.removeClient(c)
	}
}

// removeClient takes a client out of the world: registry first, then the
// room or lobby it was in learns about the departure.
func (s *Server) removeClient(c *world.Client) {
	slog.Debug("removing client", slog.String("name", c.Name()))
	c.Disconnect()

	lobby, inLobby := c.Lobby()
	roomID, inGame := c.Game()
	s.clients.Remove(c.ID())

	if inGame {
		room := s.rooms.Get(roomID)
		if room == nil {
			return
		}
		index, ok := room.SeatIndex(c.ID())
		if !ok {
			return
		}
		if room.Status() == game.WaitingPlayers {
			room.RemoveSeat(index)
			s.broadcastGame(roomID, room, func(o *world.Client) {
				o.Send(&serverpackets.GamePart{D: o.NextNum(), Index: index, Reason: 6})
			})
			s.gameChanged(roomID)
		} else {
			s.broadcastGame(roomID, room, func(o *world.Client) {
				o.Send(&serverpackets.GamePart{D: o.NextNum(), Index: index, Reason: 4})
			})
			room.Seats()[index].InGame = false
		}
		return
	}

	if inLobby {
		s.clients.ForEachIdle(lobby, func(o *world.Client) {
			o.Send(&serverpackets.LobbyPart{
				D:      o.NextNum(),
				Name:   c.Name(),
				Reason: protocol.JoinLeaveReason{Code: protocol.ReasonLostConnection},
			})
		})
	}
}

// handlePackets drains every client's inbound queue through the dispatcher.
func (s *Server) handlePackets() {
	s.clients.ForEach(func(c *world.Client) {
		for {
			pkt, ok := c.Poll()
			if !ok {
				return
			}
			s.dispatch(c, pkt)
		}
	})
}
